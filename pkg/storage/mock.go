package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/state"
)

// MockPlayerStore is an in-memory implementation of PlayerStore for
// testing.
type MockPlayerStore struct {
	mu        sync.RWMutex
	players   map[string]*state.PlayerState
	pingError error
	saveError error
}

// Ensure MockPlayerStore implements PlayerStore interface
var _ PlayerStore = (*MockPlayerStore)(nil)

// NewMockPlayerStore creates a new mock player store.
func NewMockPlayerStore() *MockPlayerStore {
	return &MockPlayerStore{
		players: make(map[string]*state.PlayerState),
	}
}

// SetPingError configures the mock to fail on ping with the given error.
func (m *MockPlayerStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail on save with the given error.
func (m *MockPlayerStore) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// Ping mocks the store ping.
func (m *MockPlayerStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks the store close.
func (m *MockPlayerStore) Close() error {
	return nil
}

// GetPlayer returns the stored state, lazily creating defaults.
func (m *MockPlayerStore) GetPlayer(ctx context.Context, playerID string) (*state.PlayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ps, ok := m.players[playerID]
	if !ok {
		ps = state.NewPlayerState(playerID)
		m.players[playerID] = ps
	}
	return clone(ps), nil
}

// SavePlayer overwrites the stored state.
func (m *MockPlayerStore) SavePlayer(ctx context.Context, ps *state.PlayerState) error {
	if ps == nil {
		return errors.New("player state cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	ps.Touch()
	m.players[ps.ID] = clone(ps)
	return nil
}

// AddItem adds an item to the player's inventory with set semantics.
func (m *MockPlayerStore) AddItem(ctx context.Context, playerID string, itemID catalog.ItemID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ps, ok := m.players[playerID]
	if !ok {
		ps = state.NewPlayerState(playerID)
		m.players[playerID] = ps
	}
	ps.AddItem(itemID)
	return nil
}

// RemoveItem removes an item from the player's inventory.
func (m *MockPlayerStore) RemoveItem(ctx context.Context, playerID string, itemID catalog.ItemID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ps, ok := m.players[playerID]
	if !ok {
		return nil
	}
	ps.RemoveItem(itemID)
	return nil
}

// DeletePlayer removes the player's record.
func (m *MockPlayerStore) DeletePlayer(ctx context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.players, playerID)
	return nil
}

// clone copies a player state so callers cannot mutate the stored
// record without going through SavePlayer.
func clone(ps *state.PlayerState) *state.PlayerState {
	cp := *ps
	cp.Inventory = append([]catalog.ItemID{}, ps.Inventory...)
	return &cp
}
