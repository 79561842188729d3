package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/keyauth/userauth-api/internal/api"
	apiMiddleware "github.com/keyauth/userauth-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// The API key gate runs before every route except the allowlisted
// documentation and health paths, so no business handler is reachable
// without a valid key.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// The gate is installed globally: key issuance itself requires a key,
	// with seeded keys bootstrapping the first client.
	gate := apiMiddleware.NewAPIKeyMiddleware(app.apiKeyService, "/swagger", "/health")
	r.Use(gate.Authenticate)

	// Create API handlers using the application's services
	apiKeyHandler := api.NewAPIKeyHandler(app.apiKeyService, app.apiKeyService, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.passwordHasher, app.credentialChecker, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// API key endpoints
		r.Post("/apikeys/generate", apiKeyHandler.Generate)
		r.Post("/apikeys/validate", apiKeyHandler.Validate)

		// User endpoints
		r.Get("/users", userHandler.List)
		r.Post("/users", userHandler.Create)
		r.Get("/users/{id}", userHandler.Get)
		r.Put("/users/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)
		r.Post("/users/validate-password", userHandler.ValidatePassword)
	})

	// Health check endpoint (allowlisted, bypasses the gate)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
