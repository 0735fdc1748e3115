// Package session keeps live game sessions in memory, one per character,
// and moves their state to and from storage.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmorrisey/warren/internal/storage"
	"github.com/jmorrisey/warren/pkg/game"
)

// PlayerSession pairs a live game session with its character ID. Lock it for
// the duration of a turn: a character plays one turn at a time.
type PlayerSession struct {
	sync.Mutex

	ID      string
	Session *game.Session
}

// Manager owns the live sessions and the storage behind them.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*PlayerSession

	store  storage.Storage
	logger *slog.Logger
}

func NewManager(store storage.Storage, logger *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*PlayerSession),
		store:    store,
		logger:   logger,
	}
}

// Get returns the live session for a character, restoring it from storage on
// first use. A character with no saved state starts a fresh game.
func (m *Manager) Get(ctx context.Context, characterID string) (*PlayerSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ps, ok := m.sessions[characterID]; ok {
		return ps, nil
	}

	cs, err := m.store.LoadCharacterState(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load character state: %w", err)
	}

	cfg := game.SessionConfig{Logger: m.logger}
	if cs != nil {
		cfg.Character = cs.Character
		cfg.DiscoveredActions = cs.DiscoveredActions
		cfg.DiscoveredNarrateVerbs = cs.DiscoveredNarrateVerbs
		cfg.TutorialToolTaken = cs.TutorialToolTaken
		cfg.TutorialBlockageCleared = cs.TutorialBlockageCleared
		m.logger.Info("Restored character from storage", "character_id", characterID)
	} else {
		m.logger.Info("Starting new game", "character_id", characterID)
	}

	sess, err := game.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	mods, err := m.store.LoadLocationModifications(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load location modifications: %w", err)
	}
	sess.ApplyModifications(mods)

	ps := &PlayerSession{ID: characterID, Session: sess}
	m.sessions[characterID] = ps
	return ps, nil
}

// SaveState persists the session's character state and flushes its pending
// location modifications. Call it with the player session locked.
func (m *Manager) SaveState(ctx context.Context, ps *PlayerSession) error {
	cs := &storage.CharacterState{
		Character:               ps.Session.Character(),
		DiscoveredActions:       ps.Session.DiscoveredActions(),
		DiscoveredNarrateVerbs:  ps.Session.DiscoveredNarrateVerbs(),
		TutorialToolTaken:       ps.Session.TutorialToolTaken(),
		TutorialBlockageCleared: ps.Session.TutorialBlockageCleared(),
	}
	if err := m.store.SaveCharacterState(ctx, ps.ID, cs); err != nil {
		return fmt.Errorf("failed to save character state: %w", err)
	}

	for _, mod := range ps.Session.DrainModifications() {
		if err := m.store.RecordLocationModification(ctx, ps.ID, mod); err != nil {
			// The in-memory world already changed; a lost record means the
			// change won't survive a restart. Log and keep going.
			m.logger.Error("Failed to record location modification",
				"character_id", ps.ID, "kind", mod.Kind, "error", err)
		}
	}
	return nil
}
