package workspace

import (
	"github.com/spf13/cobra"

	"github.com/securisec/mixto-go/cmd/workspace/entries"
	"github.com/securisec/mixto-go/cmd/workspace/list"
)

// BuildCmdTree defines workspace command and includes into it all subcommands
func BuildCmdTree() *cobra.Command {
	var c = &cobra.Command{
		Use:   "workspace",
		Short: "Workspace manipulations",
	}

	c.AddCommand(list.BuildCmdTree())
	c.AddCommand(entries.BuildCmdTree())

	return c
}
