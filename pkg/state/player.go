package state

import (
	"time"

	"github.com/boxes360/stalker-bot/pkg/catalog"
)

// Starting values for a fresh player.
const (
	StartingMoney  = 1500
	StartingHealth = 100
)

// Flags records one-time narrative events. Each flag transitions
// false -> true exactly once and gates whether a repeatable action
// produces its first-time or already-done outcome.
type Flags struct {
	TalkedStalker  bool `json:"talked_stalker"`
	FoundKey       bool `json:"found_key"`
	DoorOpen       bool `json:"door_open"`
	KilledMonster  bool `json:"killed_monster"`
	FoundDocuments bool `json:"found_documents"`
}

// PlayerState is the persisted state of a single player's run.
// It is mutated exclusively by the transition engine; the storage
// layer treats it as an opaque record keyed by ID.
type PlayerState struct {
	ID           string           `json:"id"`
	Name         string           `json:"name,omitempty"` // empty until onboarding names the player
	CurrentScene catalog.SceneID  `json:"current_scene"`
	Inventory    []catalog.ItemID `json:"inventory,omitempty"` // ordered set, duplicates forbidden
	Money        int              `json:"money"`
	Health       int              `json:"health"` // [0,100]; tracked but inert in current rules
	Points       int              `json:"points"`
	Flags        Flags            `json:"flags"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// NewPlayerState creates a player with default values: the name
// collection scene, the starting stake, and all flags cleared.
func NewPlayerState(id string) *PlayerState {
	now := time.Now().UTC()
	return &PlayerState{
		ID:           id,
		CurrentScene: catalog.SceneStart,
		Inventory:    []catalog.ItemID{},
		Money:        StartingMoney,
		Health:       StartingHealth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Reset reinitializes all fields to defaults, preserving the player id
// and creation time.
func (ps *PlayerState) Reset() {
	ps.Name = ""
	ps.CurrentScene = catalog.SceneStart
	ps.Inventory = []catalog.ItemID{}
	ps.Money = StartingMoney
	ps.Health = StartingHealth
	ps.Points = 0
	ps.Flags = Flags{}
	ps.UpdatedAt = time.Now().UTC()
}

// HasItem reports whether the item is in the player's inventory.
func (ps *PlayerState) HasItem(id catalog.ItemID) bool {
	for _, item := range ps.Inventory {
		if item == id {
			return true
		}
	}
	return false
}

// AddItem appends the item to the inventory with set semantics.
// Adding an item already present is a no-op; the return value reports
// whether the inventory changed.
func (ps *PlayerState) AddItem(id catalog.ItemID) bool {
	if ps.HasItem(id) {
		return false
	}
	ps.Inventory = append(ps.Inventory, id)
	return true
}

// RemoveItem removes the item from the inventory, preserving the order
// of the remaining items. Removing an absent item is a no-op.
func (ps *PlayerState) RemoveItem(id catalog.ItemID) bool {
	for i, item := range ps.Inventory {
		if item == id {
			ps.Inventory = append(ps.Inventory[:i], ps.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Touch updates the modification timestamp. Storage implementations
// call this on every save.
func (ps *PlayerState) Touch() {
	ps.UpdatedAt = time.Now().UTC()
}
