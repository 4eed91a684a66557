package entry

import (
	"github.com/spf13/cobra"

	"github.com/securisec/mixto-go/cmd/entry/commits"
)

// BuildCmdTree defines entry command and includes into it all subcommands
func BuildCmdTree() *cobra.Command {
	var c = &cobra.Command{
		Use:   "entry",
		Short: "Entry manipulations",
	}

	c.AddCommand(commits.BuildCmdTree())

	return c
}
