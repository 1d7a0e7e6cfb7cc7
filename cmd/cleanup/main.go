// Command cleanup deletes uploaded pronunciation recordings that no word
// references and that are older than the configured retention period. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/SiphoChris/afrilex/internal/adapter/postgres"
	"github.com/SiphoChris/afrilex/internal/adapter/postgres/audio"
	"github.com/SiphoChris/afrilex/internal/app"
	"github.com/SiphoChris/afrilex/internal/config"
)

func main() {
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

	audioRepo := audio.New(pool)

	threshold := time.Now().UTC().Add(-cfg.Media.OrphanRetention)

	deleted, err := audioRepo.DeleteOrphans(ctx, cfg.Media.PublicPrefix, threshold)
	if err != nil {
		logger.Error("orphan audio cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("orphan audio cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
