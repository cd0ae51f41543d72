package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmartell/amorcito-api/internal/catalog"
	"github.com/dmartell/amorcito-api/internal/config"
	"github.com/dmartell/amorcito-api/internal/database"
	"github.com/dmartell/amorcito-api/internal/database/postgres"
	"github.com/dmartell/amorcito-api/internal/phrase"
	"github.com/dmartell/amorcito-api/internal/progress"
	"github.com/dmartell/amorcito-api/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	// Dev runs on defaults; anywhere else the env must be complete
	if cfg.Environment == "dev" || cfg.Environment == "development" {
		if warnings, err := config.ValidateEnvWithWarnings(); err == nil {
			for _, w := range warnings {
				slog.Warn(w)
			}
		}
	} else {
		if err := config.ValidateEnv(); err != nil {
			slog.Error("Environment validation failed", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPool(context.Background(), cfg.GetDBConnString(),
		database.DefaultMaxConns, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(dbPool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	catalogProvider := catalog.NewProvider(cfg.DataDir)

	progressRepo := postgres.NewProgressRepository(dbPool)
	progressService := progress.NewService(progressRepo, catalogProvider)
	phraseService := phrase.NewService(catalogProvider)

	srv := server.NewServer(cfg.Port, cfg.CORSOrigins, dbPool, progressService, phraseService)

	// Run the server in a goroutine so we can wait on shutdown signals
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
