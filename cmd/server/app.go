package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/keyauth/userauth-api/internal/config"
	"github.com/keyauth/userauth-api/internal/platform/postgres"
	"github.com/keyauth/userauth-api/internal/service/auth"
	"github.com/keyauth/userauth-api/internal/store"
)

// shutdownGrace bounds how long in-flight requests may run after a
// shutdown signal before the listener is torn down.
const shutdownGrace = 10 * time.Second

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. Dependencies are
// created once at process start and passed explicitly; no component
// resolves anything from global state.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore   store.UserStore
	apiKeyStore store.APIKeyStore

	// Service interfaces
	passwordHasher    auth.PasswordHasher
	apiKeyService     *auth.APIKeyService
	credentialChecker auth.CredentialChecker
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.apiKeyStore = postgres.NewPostgresAPIKeyStore(db, logger)

	// Initialize password hasher
	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize API key service
	var err error
	app.apiKeyService, err = auth.NewAPIKeyService(app.apiKeyStore, cfg.Auth.KeyValidityDays, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize API key service: %w", err)
	}
	logger.Info("API key service initialized",
		"key_validity_days", cfg.Auth.KeyValidityDays)

	// Initialize credential checker
	app.credentialChecker, err = auth.NewUserCredentialChecker(app.userStore, app.passwordHasher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential checker: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until SIGINT/SIGTERM arrives or the passed context is
// canceled, then drains in-flight requests within shutdownGrace and
// releases the application's resources. It blocks for the lifetime of
// the process.
func (app *application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		// The listener died on its own; nothing left to drain.
		app.cleanup()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("Shutdown signal received, draining requests")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	app.cleanup()
	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	app.logger.Info("Server stopped")
	return nil
}

// cleanup releases everything newApplication acquired. Called exactly
// once, after the HTTP listener has stopped accepting requests.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
