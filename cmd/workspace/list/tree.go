package list

import (
	"github.com/spf13/cobra"
)

// BuildCmdTree defines list command
func BuildCmdTree() *cobra.Command {
	command := &cmd{}

	var c = &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		Long: `List workspaces

	This command lists all workspaces visible to the calling user and returns
	them in JSON format.

	Connection parameters are resolved from MIXTO_HOST and MIXTO_API_KEY, or
	from the ~/.mixto.json config file.
	`,
		Run: command.run,
	}

	return c
}
