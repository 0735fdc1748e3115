package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/jmorrisey/warren/pkg/game"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu            sync.RWMutex
	characters    map[string]*CharacterState
	modifications map[string][]game.LocationModification
	pingError     error
	saveError     error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		characters:    make(map[string]*CharacterState),
		modifications: make(map[string][]game.LocationModification),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail on save with the given error
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveCharacterState mocks saving a character state
func (m *MockStorage) SaveCharacterState(ctx context.Context, id string, cs *CharacterState) error {
	if cs == nil {
		return errors.New("character state cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.characters[id] = cs
	return nil
}

// LoadCharacterState mocks loading a character state
func (m *MockStorage) LoadCharacterState(ctx context.Context, id string) (*CharacterState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cs, exists := m.characters[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	return cs, nil
}

// RecordLocationModification mocks appending a location modification
func (m *MockStorage) RecordLocationModification(ctx context.Context, id string, mod game.LocationModification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modifications[id] = append(m.modifications[id], mod)
	return nil
}

// LoadLocationModifications mocks loading the modification log
func (m *MockStorage) LoadLocationModifications(ctx context.Context, id string) ([]game.LocationModification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mods := make([]game.LocationModification, len(m.modifications[id]))
	copy(mods, m.modifications[id])
	return mods, nil
}
