package commits

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
	EntryID string
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

	commits, err := mc.EntryCommits(ctx, i.config.EntryID)
	if err != nil {
		log.Fatalf("Unable to list commits: %s", err)
	}

	buff, err := json.Marshal(commits)
	if err != nil {
		log.Fatalf("Unable to list commits: %s", err)
	}
	fmt.Println(string(buff))
}
