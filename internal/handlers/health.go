package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmorrisey/warren/internal/services"
	"github.com/jmorrisey/warren/internal/storage"
)

type HealthResponse struct {
	Status     string                 `json:"status"`
	Timestamp  time.Time              `json:"timestamp"`
	Service    string                 `json:"service"`
	Components map[string]interface{} `json:"components"`
}

type HealthHandler struct {
	store      storage.Storage
	llmService services.LLMService
	modelName  string
	logger     *slog.Logger
}

func NewHealthHandler(store storage.Storage, llmService services.LLMService, modelName string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:      store,
		llmService: llmService,
		modelName:  modelName,
		logger:     logger,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	h.logger.Debug("Health check requested",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	components := make(map[string]interface{})
	overallStatus := "healthy"

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Storage health check failed", "error", err)
		components["storage"] = "unhealthy"
		overallStatus = "degraded"
	} else {
		components["storage"] = "healthy"
	}

	if ready, err := h.llmService.IsModelReady(ctx, h.modelName); err != nil || !ready {
		// Narration degrades to mechanics-only replies; turns still work.
		h.logger.Warn("LLM model is not ready", "model", h.modelName, "error", err)
		components["llm"] = "not_ready"
		overallStatus = "degraded"
	} else {
		components["llm"] = "ready"
	}

	response := HealthResponse{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Service:    "warren",
		Components: components,
	}

	statusCode := http.StatusOK
	if overallStatus != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Error encoding health response",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
