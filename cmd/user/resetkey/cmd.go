package resetkey

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

type cmd struct{}

func (i *cmd) run(cmd *cobra.Command, args []string) {
	mc, err := client.New(client.Config{})
	if err != nil {
		log.Fatalf("Unable to configure Mixto client: %s", err)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), httpTimeout)
	defer cancel()

	info, err := mc.UserResetAPIKey(ctx)
	if err != nil {
		log.Fatalf("Unable to reset API key: %s", err)
	}

	buff, err := json.Marshal(info)
	if err != nil {
		log.Fatalf("Unable to reset API key: %s", err)
	}
	fmt.Println(string(buff))
}
