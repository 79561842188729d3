package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"message": "created"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "created", body["message"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes the trace ID when the context carries one", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = req.WithContext(SetTraceID(req.Context()))

		recorder := httptest.NewRecorder()
		RespondWithError(recorder, req, http.StatusBadRequest, "Invalid request format")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Invalid request format", body.Error)
		assert.Len(t, body.TraceID, 2*TraceIDLength)
	})

	t.Run("omits the trace ID when the context has none", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		RespondWithError(recorder, httptest.NewRequest(http.MethodGet, "/test", nil),
			http.StatusNotFound, "User not found.")

		assert.NotContains(t, recorder.Body.String(), "trace_id")
	})

	t.Run("status code is not serialized", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		RespondWithError(recorder, httptest.NewRequest(http.MethodGet, "/test", nil),
			http.StatusConflict, "Already exists.")

		assert.NotContains(t, recorder.Body.String(), "409")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError,
		"An error occurred.", assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	// The raw error never reaches the client.
	assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
	assert.Contains(t, recorder.Body.String(), "An error occurred.")
}

type validatedRequest struct {
	Name string `json:"name" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":"alice"}`))

		var body validatedRequest
		require.NoError(t, DecodeJSON(req, &body))
		assert.Equal(t, "alice", body.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":`))

		var body validatedRequest
		assert.Error(t, DecodeJSON(req, &body))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(validatedRequest{Name: "alice"}))
	assert.Error(t, ValidateRequest(validatedRequest{}))
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 2*TraceIDLength)

	// Each context gets its own ID.
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(context.Background())))
}
