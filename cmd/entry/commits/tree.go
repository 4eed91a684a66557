package commits

import (
	"github.com/spf13/cobra"
)

// BuildCmdTree defines commits command
func BuildCmdTree() *cobra.Command {
	command := &cmd{}

	var c = &cobra.Command{
		Use:   "commits",
		Short: "List commits of an entry",
		Long: `List commits of an entry

	This command lists the commits of a single entry and returns them in JSON
	format.
	`,
		Run: command.run,
	}

	c.Flags().StringVar(&command.config.EntryID, "entry-id", "", "entry ID (required)")
	// It is fine to ignore this error
	_ = c.MarkFlagRequired("entry-id")

	return c
}
