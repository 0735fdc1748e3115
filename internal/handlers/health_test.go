package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorrisey/warren/internal/services"
	"github.com/jmorrisey/warren/internal/storage"
)

func TestHealthHandler_Healthy(t *testing.T) {
	handler := NewHealthHandler(storage.NewMockStorage(), services.NewMockLLMAPI(), "test-model", testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "warren", resp.Service)
	assert.Equal(t, "healthy", resp.Components["storage"])
	assert.Equal(t, "ready", resp.Components["llm"])
}

func TestHealthHandler_StorageDown(t *testing.T) {
	store := storage.NewMockStorage()
	store.SetPingError(errors.New("connection refused"))
	handler := NewHealthHandler(store, services.NewMockLLMAPI(), "test-model", testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unhealthy", resp.Components["storage"])
}

func TestHealthHandler_LLMNotReady(t *testing.T) {
	llm := services.NewMockLLMAPI()
	llm.IsModelReadyFunc = func(ctx context.Context, modelName string) (bool, error) {
		return false, nil
	}
	handler := NewHealthHandler(storage.NewMockStorage(), llm, "test-model", testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "healthy", resp.Components["storage"])
	assert.Equal(t, "not_ready", resp.Components["llm"])
}
