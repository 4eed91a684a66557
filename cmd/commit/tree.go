package commit

import (
	"github.com/spf13/cobra"

	"github.com/securisec/mixto-go/cmd/commit/add"
)

// BuildCmdTree defines commit command and includes into it all subcommands
func BuildCmdTree() *cobra.Command {
	var c = &cobra.Command{
		Use:   "commit",
		Short: "Commit manipulations",
	}

	c.AddCommand(add.BuildCmdTree())

	return c
}
