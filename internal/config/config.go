package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	LLMProviderAnthropic = "anthropic"
	LLMProviderMock      = "mock"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	RedisURL string

	LLMProvider     string
	AnthropicAPIKey string
	ModelName       string
}

func Load() *Config {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		LLMProvider:     getEnv("LLM_PROVIDER", LLMProviderAnthropic),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		ModelName:       getEnv("MODEL_NAME", "claude-3-5-haiku-latest"),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
