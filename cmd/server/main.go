// Package main implements the entry point for the user auth API server,
// which issues and checks API keys and user passwords for a backend.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/keyauth/userauth-api/internal/config"
	"github.com/keyauth/userauth-api/internal/platform/logger"
)

// main is the entry point for the userauth-api server. It initializes
// configuration, logging and the database connection, applies pending
// migrations, seeds bootstrap data, and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.seedData(ctx); err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}

	return app.Run(ctx)
}
