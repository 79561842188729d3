package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/keyauth/userauth-api/internal/api/shared"
	"github.com/keyauth/userauth-api/internal/service/auth"
	"github.com/keyauth/userauth-api/internal/store"
)

// APIKeyHandler handles key issuance and explicit validation requests.
type APIKeyHandler struct {
	issuer    auth.KeyIssuer
	validator auth.KeyValidator
	logger    *slog.Logger
}

// NewAPIKeyHandler creates a new APIKeyHandler with the given dependencies.
func NewAPIKeyHandler(issuer auth.KeyIssuer, validator auth.KeyValidator, logger *slog.Logger) *APIKeyHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &APIKeyHandler{
		issuer:    issuer,
		validator: validator,
		logger:    logger.With(slog.String("component", "apikey_handler")),
	}
}

// Generate handles POST /api/apikeys/generate?clientId=<id>.
// Returns the new key record on success, a client error when the
// identifier is empty or already holds a key, and a generic server
// error otherwise.
func (h *APIKeyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")

	apiKey, err := h.issuer.IssueKey(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrClientIDRequired):
			shared.RespondWithError(w, r, http.StatusBadRequest, "ClientId is required.")
		case errors.Is(err, store.ErrClientIDExists):
			shared.RespondWithError(w, r, http.StatusConflict, "API key already exists for this ClientId.")
		default:
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewAPIKeyResponse(apiKey))
}

// Validate handles POST /api/apikeys/validate.
// Returns success if the presented key is known and unexpired, and
// not-found semantics otherwise.
func (h *APIKeyHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateKeyRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: key is required")
		return
	}

	valid, err := h.validator.ValidateKey(r.Context(), req.Key)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if !valid {
		shared.RespondWithError(w, r, http.StatusNotFound, "Validation unsuccessful - Invalid API Key.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Validation successful."})
}
