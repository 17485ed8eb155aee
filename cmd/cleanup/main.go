// Command cleanup removes read notifications older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/dms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dms-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/dms-backend/internal/app"
	"github.com/heartmarshall/dms-backend/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	notificationRepo := notification.New(pool)

	threshold := time.Now().Add(-cfg.Notification.Retention())

	deleted, err := notificationRepo.DeleteReadBefore(ctx, threshold)
	if err != nil {
		logger.Error("notification cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("notification cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
