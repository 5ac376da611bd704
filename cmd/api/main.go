package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lexicon/internal/app/bootstrap"
	"lexicon/internal/platform/config"
	"lexicon/internal/platform/logging"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Serve HTTP until SIGINT/SIGTERM, then drain.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildAPI(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap api failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("api shutdown close failed", "error", err)
		}
	}()

	if err := app.Run(ctx); err != nil {
		logger.Error("api stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}
