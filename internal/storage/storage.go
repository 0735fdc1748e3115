package storage

import (
	"context"

	"github.com/jmorrisey/warren/pkg/game"
)

// CharacterState is the persisted save for one character: the character
// sheet plus the session flags that live outside it.
type CharacterState struct {
	Character               *game.Character `json:"character"`
	DiscoveredActions       []string        `json:"discovered_actions"`
	DiscoveredNarrateVerbs  []string        `json:"discovered_narrate_verbs"`
	TutorialToolTaken       bool            `json:"tutorial_tool_taken"`
	TutorialBlockageCleared bool            `json:"tutorial_blockage_cleared"`
}

// Storage defines the interface for save-game persistence. World content is
// static; only the character state and the location modification log are
// stored.
type Storage interface {
	// Ping tests the storage connection
	Ping(ctx context.Context) error

	// Close closes the storage connection
	Close() error

	// SaveCharacterState saves the character state under the given ID
	SaveCharacterState(ctx context.Context, id string, cs *CharacterState) error

	// LoadCharacterState retrieves a character state by ID.
	// Returns nil if the character doesn't exist
	LoadCharacterState(ctx context.Context, id string) (*CharacterState, error)

	// RecordLocationModification appends one world change to the character's log
	RecordLocationModification(ctx context.Context, id string, mod game.LocationModification) error

	// LoadLocationModifications returns the character's world changes, oldest first
	LoadLocationModifications(ctx context.Context, id string) ([]game.LocationModification, error)
}
