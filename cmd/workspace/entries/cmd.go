package entries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	client "github.com/securisec/mixto-go/lib/mixto"
)

const httpTimeout = 5 * time.Second

type config struct {
	WorkspaceID    string
	IncludeCommits bool
}

type cmd struct {
	config config
}

func (i *cmd) run(cmd *cobra.Command, args []string) {
	mc, err := client.New(client.Config{})
	if err != nil {
		log.Fatalf("Unable to configure Mixto client: %s", err)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), httpTimeout)
	defer cancel()

	entries, err := mc.WorkspaceEntries(ctx, i.config.WorkspaceID, i.config.IncludeCommits)
	if err != nil {
		log.Fatalf("Unable to list entries: %s", err)
	}

	buff, err := json.Marshal(entries)
	if err != nil {
		log.Fatalf("Unable to list entries: %s", err)
	}
	fmt.Println(string(buff))
}
