package services

import (
	"context"

	"github.com/jmorrisey/warren/pkg/chat"
)

// LLMService defines the interface for the LLM that narrates the game
type LLMService interface {
	// InitModel initializes the LLM model on startup
	InitModel(ctx context.Context, modelName string) error

	// GenerateResponse generates a narration response using the LLM
	GenerateResponse(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)

	// IsModelReady checks if the specified model is ready for use
	IsModelReady(ctx context.Context, modelName string) (bool, error)
}
