// Command server runs the document management HTTP API.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml) and the
// environment; an optional .env file is loaded first.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/dms-backend/internal/app"
	"github.com/heartmarshall/dms-backend/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := app.Run(ctx)
	stop()
	if err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
