package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmorrisey/warren/internal/config"
	"github.com/jmorrisey/warren/internal/handlers"
	"github.com/jmorrisey/warren/internal/logger"
	"github.com/jmorrisey/warren/internal/middleware"
	"github.com/jmorrisey/warren/internal/services"
	"github.com/jmorrisey/warren/internal/session"
	"github.com/jmorrisey/warren/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Warren API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName)

	var llmService services.LLMService
	switch strings.ToLower(cfg.LLMProvider) {
	case config.LLMProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			log.Error("Anthropic API key is required when using anthropic provider")
			os.Exit(1)
		}
		llmService = services.NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, log)
		log.Info("Using Anthropic LLM provider")
	case config.LLMProviderMock:
		// Mechanics-only mode: turns work, narration is canned.
		llmService = services.NewMockLLMAPI()
		log.Warn("Using mock LLM provider, narration is disabled")
	default:
		log.Error("Invalid LLM provider specified", "provider", cfg.LLMProvider,
			"supported", []string{config.LLMProviderAnthropic, config.LLMProviderMock})
		os.Exit(1)
	}

	store, err := storage.NewRedisStorage(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to configure storage", "error", err)
		os.Exit(1)
	}

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	initCtx, initCancel := context.WithTimeout(context.Background(), time.Minute)
	defer initCancel()
	if err := llmService.InitModel(initCtx, cfg.ModelName); err != nil {
		log.Error("Failed to initialize LLM model", "error", err, "model", cfg.ModelName)
		os.Exit(1)
	}

	sessions := session.NewManager(store, log)

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(store, llmService, cfg.ModelName, log))
	mux.Handle("/v1/state", handlers.NewStateHandler(sessions, log))
	mux.Handle("/v1/turn", handlers.NewTurnHandler(sessions, llmService, log))

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     middleware.Logger(mux),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
