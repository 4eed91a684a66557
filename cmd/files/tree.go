package files

import (
	"github.com/spf13/cobra"

	"github.com/securisec/mixto-go/cmd/files/gcsimport"
	"github.com/securisec/mixto-go/cmd/files/s3import"
)

// BuildCmdTree defines files command and includes into it all subcommands
func BuildCmdTree() *cobra.Command {
	var c = &cobra.Command{
		Use:   "files",
		Short: "Bulk file manipulations",
	}

	c.AddCommand(s3import.BuildCmdTree())
	c.AddCommand(gcsimport.BuildCmdTree())

	return c
}
