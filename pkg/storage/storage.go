// Package storage defines the player persistence contract consumed by
// the game service. Implementations live in internal/storage.
package storage

import (
	"context"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/state"
)

// PlayerStore is the read/modify/write contract for player state.
// One record per player; list-valued fields are replaced wholesale on
// save, not merged.
type PlayerStore interface {
	// Ping tests the store connection.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error

	// GetPlayer returns the player's state, lazily creating and
	// persisting defaults when no record exists. A corrupt or missing
	// record resolves to defaults rather than an error.
	GetPlayer(ctx context.Context, playerID string) (*state.PlayerState, error)

	// SavePlayer overwrites the player's record.
	SavePlayer(ctx context.Context, ps *state.PlayerState) error

	// AddItem adds an item to the player's inventory with set
	// semantics: adding an item already present is a no-op.
	AddItem(ctx context.Context, playerID string, itemID catalog.ItemID) error

	// RemoveItem removes an item from the player's inventory.
	// Removing an absent item is a no-op.
	RemoveItem(ctx context.Context, playerID string, itemID catalog.ItemID) error

	// DeletePlayer removes the player's record.
	DeletePlayer(ctx context.Context, playerID string) error
}
