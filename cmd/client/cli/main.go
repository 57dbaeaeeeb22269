package main

import (
	"context"
	"log"

	"github.com/quickticket/quickticket-cli/internal/client/cli"
	"github.com/quickticket/quickticket-cli/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
