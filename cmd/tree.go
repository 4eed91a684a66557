package cmd

import (
	"github.com/spf13/cobra"

	"github.com/securisec/mixto-go/cmd/commit"
	"github.com/securisec/mixto-go/cmd/entry"
	"github.com/securisec/mixto-go/cmd/files"
	"github.com/securisec/mixto-go/cmd/user"
	"github.com/securisec/mixto-go/cmd/workspace"
)

// BuildCmdTree defines root command and includes into it all subcommands
func BuildCmdTree() *cobra.Command {
	var c = &cobra.Command{
		Use:   "mixto",
		Short: "Mixto command line interface",
		Long: `Mixto CLI allows to connect to a Mixto server and perform different actions
in a console manner.

It uses the Mixto API and needs an API key. Connection parameters are taken
from the MIXTO_HOST and MIXTO_API_KEY environment variables, or from the
~/.mixto.json config file written by the Mixto web application.
`,
	}

	c.AddCommand(workspace.BuildCmdTree())
	c.AddCommand(entry.BuildCmdTree())
	c.AddCommand(commit.BuildCmdTree())
	c.AddCommand(user.BuildCmdTree())
	c.AddCommand(files.BuildCmdTree())

	return c
}
