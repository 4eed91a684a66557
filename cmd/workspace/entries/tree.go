package entries

import (
	"github.com/spf13/cobra"
)

// BuildCmdTree defines entries command
func BuildCmdTree() *cobra.Command {
	command := &cmd{}

	var c = &cobra.Command{
		Use:   "entries",
		Short: "List entries of a workspace",
		Long: `List entries of a workspace

	This command lists the entries of a workspace and returns them in JSON
	format. When no workspace is given with --workspace-id, the workspace from
	the config file or MIXTO_WORKSPACE_ID is used.
	`,
		Run: command.run,
	}

	c.Flags().StringVar(&command.config.WorkspaceID, "workspace-id", "", "workspace ID (defaults to the configured workspace)")
	c.Flags().BoolVar(&command.config.IncludeCommits, "include-commits", false, "include each entry's commits")

	return c
}
