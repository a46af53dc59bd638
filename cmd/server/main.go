package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/maxviazov/customers-service/internal/app"
	"github.com/maxviazov/customers-service/internal/config"
	"github.com/maxviazov/customers-service/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = cfg.App.Env
	}
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := app.OpenSource(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Str("driver", cfg.Source.Driver).Msg("❌ Customer source unavailable")
	}
	defer source.Close()

	go app.WatchReload(ctx, source, appLogger)

	appLogger.Info().Str("driver", cfg.Source.Driver).Int("port", cfg.App.Port).Msg("🚀 Service started")
	if err := app.NewServer(cfg, appLogger, source).Run(ctx); err != nil {
		appLogger.Error().Err(err).Msg("server stopped with error")
	}
}
