package resetkey

import (
	"github.com/spf13/cobra"
)

// BuildCmdTree defines reset-key command
func BuildCmdTree() *cobra.Command {
	command := &cmd{}

	var c = &cobra.Command{
		Use:   "reset-key",
		Short: "Reset the calling user's API key",
		Long: `Reset the calling user's API key

	This command revokes the current API key and prints the profile with the
	replacement key. The old key stops working immediately, so update
	~/.mixto.json or MIXTO_API_KEY afterwards.
	`,
		Run: command.run,
	}

	return c
}
