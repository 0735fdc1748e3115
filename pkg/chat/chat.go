package chat

import "fmt"

// TurnRequest is one player turn submitted to the api.
type TurnRequest struct {
	CharacterID string `json:"character_id"`
	Input       string `json:"input"`
}

// ChatResponse is the narrated reply returned by the api.
type ChatResponse struct {
	Message string `json:"message,omitempty"`
}

const (
	ChatRoleUser   = "user"
	ChatRoleAgent  = "assistant" // DM
	ChatRoleSystem = "system"
)

// ChatMessage represents a single chat message in the conversation.
// The role/content shape is shared by the LLM provider APIs.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

func (tr *TurnRequest) Validate() error {
	if tr.CharacterID == "" {
		return fmt.Errorf("character_id cannot be empty")
	}
	return nil
}
