package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"inkwell/internal/cli"
	"inkwell/internal/config"
	"inkwell/internal/logging"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewZerologLogger(cfg.AppEnv)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "err", err)
		return
	}

	app.Run(ctx)
}
