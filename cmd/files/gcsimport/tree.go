package gcsimport

import (
	"github.com/spf13/cobra"
)

// BuildCmdTree defines gcs-import command
func BuildCmdTree() *cobra.Command {
	i := &importer{}

	var c = &cobra.Command{
		Use:   "gcs-import",
		Short: "Import from Google Cloud Storage bucket",
		Long: `Import from Google Cloud Storage bucket

	This command will list given GCS bucket (see --bucket flag), find files that
	start with given prefix (if provided with flag --prefix), then generate for
	them short-living signed URLs, download the files and store each of them as
	a file commit on the given entry (see --entry-id flag).

	Command requires the following environment variables set to respective values:
	- GCP_KEY_PATH (path to a service account key JSON file)
	- MIXTO_HOST and MIXTO_API_KEY (unless present in ~/.mixto.json)
	`,
		Run: i.run,
	}

	c.Flags().StringVar(&i.config.Bucket, "bucket", "", "GCS bucket name (required)")
	c.Flags().StringVar(&i.config.Prefix, "prefix", "", "files path prefix (optional)")
	c.Flags().StringVar(&i.config.EntryID, "entry-id", "", "existing entry ID to import files to (required)")
	c.MarkFlagRequired("bucket")
	c.MarkFlagRequired("entry-id")

	return c
}
