package user

import (
	"github.com/spf13/cobra"

	"github.com/securisec/mixto-go/cmd/user/get"
	"github.com/securisec/mixto-go/cmd/user/resetkey"
)

// BuildCmdTree defines user command and includes into it all subcommands
func BuildCmdTree() *cobra.Command {
	var c = &cobra.Command{
		Use:   "user",
		Short: "User profile manipulations",
	}

	c.AddCommand(get.BuildCmdTree())
	c.AddCommand(resetkey.BuildCmdTree())

	return c
}
