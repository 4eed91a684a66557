package add

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	client "github.com/securisec/mixto-go/lib/mixto"
)

const httpTimeout = 5 * time.Second

type config struct {
	EntryID string
	Title   string
	Type    string
	Data    string
}

type cmd struct {
	config config
}

func (i *cmd) run(cmd *cobra.Command, args []string) {
	data := i.config.Data
	if data == "" {
		buff, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Unable to read commit data from stdin: %s", err)
		}
		data = string(buff)
	}

	mc, err := client.New(client.Config{})
	if err != nil {
		log.Fatalf("Unable to configure Mixto client: %s", err)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), httpTimeout)
	defer cancel()

	created, err := mc.CommitAdd(ctx, &client.CommitAddParams{
		EntryID: i.config.EntryID,
		Title:   i.config.Title,
		Type:    i.config.Type,
		Data:    data,
	})
	if err != nil {
		log.Fatalf("Unable to add commit: %s", err)
	}

	buff, err := json.Marshal(created)
	if err != nil {
		log.Fatalf("Unable to add commit: %s", err)
	}
	fmt.Println(string(buff))
}
