package s3import

import (
	"github.com/spf13/cobra"
)

// BuildCmdTree defines s3-import command
func BuildCmdTree() *cobra.Command {
	i := &importer{}

	var c = &cobra.Command{
		Use:   "s3-import",
		Short: "Import from AWS S3 bucket",
		Long: `Import from AWS S3 bucket

	This command will list given S3 bucket (see --bucket flag), find files that
	start with given prefix (if provided with flag --prefix), then generate for
	them short-living signed URLs, download the files and store each of them as
	a file commit on the given entry (see --entry-id flag).

	Files path prefix can be folder (then should end with slash) and/or filename
	prefix, e.g. 'folder/subfolder/' or 'loot/dump_123'.

	Command requires the following environment variables set to respective values:
	- AWS_ACCESS_KEY_ID
	- AWS_SECRET_ACCESS_KEY
	- MIXTO_HOST and MIXTO_API_KEY (unless present in ~/.mixto.json)
	`,
		Run: i.run,
	}

	c.Flags().StringVar(&i.config.Bucket, "bucket", "", "S3 bucket name (required)")
	c.Flags().StringVar(&i.config.Prefix, "prefix", "", "files path prefix (optional)")
	c.Flags().StringVar(&i.config.EntryID, "entry-id", "", "existing entry ID to import files to (required)")
	c.MarkFlagRequired("bucket")
	c.MarkFlagRequired("entry-id")

	return c
}
