package add

import (
	"github.com/spf13/cobra"

	client "github.com/securisec/mixto-go/lib/mixto"
)

// BuildCmdTree defines add command
func BuildCmdTree() *cobra.Command {
	command := &cmd{}

	var c = &cobra.Command{
		Use:   "add",
		Short: "Add a commit to an entry",
		Long: `Add a commit to an entry

	This command adds a data commit to an entry and returns the created commit
	in JSON format. When --data is omitted, the commit data is read from
	standard input, which makes it possible to pipe tool output straight into
	an entry:

	    nmap -sV target | mixto commit add --entry-id abc123 --title "nmap"
	`,
		Run: command.run,
	}

	c.Flags().StringVar(&command.config.EntryID, "entry-id", "", "entry ID to commit to (required)")
	c.Flags().StringVar(&command.config.Title, "title", "", "commit title (required)")
	c.Flags().StringVar(&command.config.Type, "type", client.CommitTypeStdout, "commit type")
	c.Flags().StringVar(&command.config.Data, "data", "", "commit data (defaults to stdin)")
	// It is fine to ignore these errors
	_ = c.MarkFlagRequired("entry-id")
	_ = c.MarkFlagRequired("title")

	return c
}
