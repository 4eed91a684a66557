package get

import (
	"github.com/spf13/cobra"
)

// BuildCmdTree defines get command
func BuildCmdTree() *cobra.Command {
	command := &cmd{}

	var c = &cobra.Command{
		Use:   "get",
		Short: "Show the calling user's profile",
		Run:   command.run,
	}

	return c
}
