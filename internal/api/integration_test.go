package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/keyauth/userauth-api/internal/api"
	apiMiddleware "github.com/keyauth/userauth-api/internal/api/middleware"
	"github.com/keyauth/userauth-api/internal/service/auth"
)

// testServer wires the full router the way cmd/server does, backed by
// in-memory stores, so requests traverse the gate and the real services.
type testServer struct {
	router chi.Router
	keys   *memAPIKeyStore
	users  *memUserStore
}

func newTestServer(t *testing.T, validityDays int) *testServer {
	t.Helper()

	keys := newMemAPIKeyStore()
	users := newMemUserStore()

	keyService, err := auth.NewAPIKeyService(keys, validityDays, nil)
	require.NoError(t, err)

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	checker, err := auth.NewUserCredentialChecker(users, hasher, nil)
	require.NoError(t, err)

	apiKeyHandler := api.NewAPIKeyHandler(keyService, keyService, nil)
	userHandler := api.NewUserHandler(users, hasher, checker, nil)

	r := chi.NewRouter()
	r.Use(apiMiddleware.TraceMiddleware)

	gate := apiMiddleware.NewAPIKeyMiddleware(keyService, "/swagger", "/health")
	r.Use(gate.Authenticate)

	r.Route("/api", func(r chi.Router) {
		r.Post("/apikeys/generate", apiKeyHandler.Generate)
		r.Post("/apikeys/validate", apiKeyHandler.Validate)
		r.Get("/users", userHandler.List)
		r.Post("/users", userHandler.Create)
		r.Get("/users/{id}", userHandler.Get)
		r.Put("/users/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)
		r.Post("/users/validate-password", userHandler.ValidatePassword)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return &testServer{router: r, keys: keys, users: users}
}

func (s *testServer) do(method, path, apiKey, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if apiKey != "" {
		req.Header.Set(apiMiddleware.APIKeyHeader, apiKey)
	}
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

// issueKey issues a key for the given client directly through the store
// service, sidestepping the gate the way the server's seeding does.
func issueKey(t *testing.T, srv *testServer, clientID string) string {
	t.Helper()

	keyService, err := auth.NewAPIKeyService(srv.keys, 20, nil)
	require.NoError(t, err)

	key, err := keyService.IssueKey(context.Background(), clientID)
	require.NoError(t, err)
	return key.Key
}

func TestServerKeyLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 20)
	bootstrapKey := issueKey(t, srv, "bootstrap")

	// Issue a key for a new client through the gated endpoint.
	recorder := srv.do(http.MethodPost, "/api/apikeys/generate?clientId=clientA", bootstrapKey, "")
	require.Equal(t, http.StatusCreated, recorder.Code)

	var issued api.APIKeyResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &issued))
	assert.Equal(t, "clientA", issued.ClientID)
	assert.Len(t, issued.Key, 64)
	assert.WithinDuration(t, time.Now().UTC().Add(20*24*time.Hour), issued.ValidUntil, time.Minute)

	// A second issuance for the same client conflicts.
	recorder = srv.do(http.MethodPost, "/api/apikeys/generate?clientId=clientA", bootstrapKey, "")
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// The fresh key validates.
	recorder = srv.do(http.MethodPost, "/api/apikeys/validate", bootstrapKey,
		`{"key":"`+issued.Key+`"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// The fresh key also passes the gate.
	recorder = srv.do(http.MethodGet, "/api/users", issued.Key, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Once expired, the same key fails both the endpoint and the gate.
	require.True(t, srv.keys.setValidUntil(issued.Key, time.Now().UTC().Add(-24*time.Hour)))

	recorder = srv.do(http.MethodPost, "/api/apikeys/validate", bootstrapKey,
		`{"key":"`+issued.Key+`"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = srv.do(http.MethodGet, "/api/users", issued.Key, "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestServerGate(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 20)
	key := issueKey(t, srv, "gate-client")

	tests := []struct {
		name           string
		method         string
		path           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "no key is unauthorized",
			method:         http.MethodGet,
			path:           "/api/users",
			apiKey:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown key is forbidden",
			method:         http.MethodGet,
			path:           "/api/users",
			apiKey:         strings.Repeat("ab", 32),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "valid key passes",
			method:         http.MethodGet,
			path:           "/api/users",
			apiKey:         key,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "health bypasses the gate",
			method:         http.MethodGet,
			path:           "/health",
			apiKey:         "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "generate endpoint itself is gated",
			method:         http.MethodPost,
			path:           "/api/apikeys/generate?clientId=other",
			apiKey:         "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := srv.do(tt.method, tt.path, tt.apiKey, "")
			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}

func TestServerUserFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 20)
	key := issueKey(t, srv, "user-flow")

	createBody := `{
		"user_name": "carol",
		"full_name": "Carol Tester",
		"email": "carol@example.com",
		"mobile_number": "5551234",
		"language": "en",
		"culture": "en-GB",
		"password": "carols-secret"
	}`

	recorder := srv.do(http.MethodPost, "/api/users", key, createBody)
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Duplicate username conflicts.
	recorder = srv.do(http.MethodPost, "/api/users", key, createBody)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// The created credentials check out end to end.
	recorder = srv.do(http.MethodPost, "/api/users/validate-password", key,
		`{"user_name":"carol","password":"carols-secret"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = srv.do(http.MethodPost, "/api/users/validate-password", key,
		`{"user_name":"carol","password":"not-the-secret"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
