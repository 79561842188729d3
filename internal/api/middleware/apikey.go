package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/keyauth/userauth-api/internal/service/auth"
)

// APIKeyHeader is the request header carrying the client's key.
const APIKeyHeader = "X-API-Key"

// gateError is the JSON body written when the gate rejects a request.
// The shape {statusCode, message} is part of the external contract.
type gateError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// APIKeyMiddleware enforces presence and validity of an API key on every
// request whose path is not allowlisted. It is the single gate between
// external callers and all protected handlers, so it must be installed
// before any business-logic route. The decision is made fresh per
// request from current store state; nothing is cached.
type APIKeyMiddleware struct {
	validator auth.KeyValidator
	allowlist []string
}

// NewAPIKeyMiddleware creates a new APIKeyMiddleware with the given key
// validator. Requests whose path starts with one of the allowlist
// prefixes (documentation and discovery endpoints) bypass the gate.
func NewAPIKeyMiddleware(validator auth.KeyValidator, allowlist ...string) *APIKeyMiddleware {
	lowered := make([]string, len(allowlist))
	for i, prefix := range allowlist {
		lowered[i] = strings.ToLower(prefix)
	}

	return &APIKeyMiddleware{
		validator: validator,
		allowlist: lowered,
	}
}

// Authenticate validates the X-API-Key header and either forwards the
// request unmodified or short-circuits it: an absent header is
// Unauthorized, a present but invalid or expired key is Forbidden.
// A header sent with an empty value counts as presented credentials
// and fails validation, it is not treated as missing.
func (m *APIKeyMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.allowlisted(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		values, present := r.Header[http.CanonicalHeaderKey(APIKeyHeader)]
		if !present {
			respondGateError(w, http.StatusUnauthorized, "API Key is missing.")
			return
		}

		var key string
		if len(values) > 0 {
			key = values[0]
		}

		valid, err := m.validator.ValidateKey(r.Context(), key)
		if err != nil {
			slog.Error("failed to validate API key", "error", err, "path", r.URL.Path)
			respondGateError(w, http.StatusInternalServerError, "Authentication error.")
			return
		}

		if !valid {
			respondGateError(w, http.StatusForbidden, "Invalid API Key.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allowlisted reports whether the path bypasses the gate. Matching is a
// case-insensitive prefix check.
func (m *APIKeyMiddleware) allowlisted(path string) bool {
	lowered := strings.ToLower(path)
	for _, prefix := range m.allowlist {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}

func respondGateError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(gateError{StatusCode: status, Message: message}); err != nil {
		slog.Error("failed to encode gate error response", "error", err)
	}
}
