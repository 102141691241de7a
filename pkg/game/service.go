// Package game wires the transition engine to the player store and
// exposes the command-style entry points consumed by any transport.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/engine"
	"github.com/boxes360/stalker-bot/pkg/state"
	"github.com/boxes360/stalker-bot/pkg/storage"
)

// Service owns the read -> compute -> write cycle around the engine.
// Callers are expected to serialize dispatches per player; across
// players the service is safe for concurrent use.
type Service struct {
	store  storage.PlayerStore
	engine *engine.Engine
	logger *slog.Logger
}

// NewService creates a game service.
func NewService(store storage.PlayerStore, eng *engine.Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		engine: eng,
		logger: logger,
	}
}

// Onboard creates or resets the player to defaults and places them in
// the name collection scene. This is one of the two legal entry points
// into the state machine's initial states.
func (s *Service) Onboard(ctx context.Context, playerID string) (*state.PlayerState, engine.Output, error) {
	ps, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, engine.Output{}, fmt.Errorf("failed to load player: %w", err)
	}

	ps.Reset()
	if err := s.store.SavePlayer(ctx, ps); err != nil {
		return nil, engine.Output{}, fmt.Errorf("failed to save player: %w", err)
	}

	s.logger.Info("Player onboarded", "player", playerID)
	return ps, engine.SceneOutput(ps), nil
}

// CompleteNaming records the player's chosen name and advances to the
// first hub scene, returning the opening cinematic.
func (s *Service) CompleteNaming(ctx context.Context, playerID, name string) (*state.PlayerState, engine.Output, error) {
	ps, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, engine.Output{}, fmt.Errorf("failed to load player: %w", err)
	}

	ps.Name = name
	ps.CurrentScene = catalog.SceneSidorovich
	if err := s.store.SavePlayer(ctx, ps); err != nil {
		return nil, engine.Output{}, fmt.Errorf("failed to save player: %w", err)
	}

	s.logger.Info("Player named", "player", playerID, "name", name)
	return ps, engine.Output{
		Text: "Night. Your truck grinds through a downpour.\n" +
			"Thunder rolls, lightning splits the sky. Nothing around but the " +
			"woods and fields of the Chernobyl exclusion zone.\n" +
			"Then, out of nowhere, lightning strikes your truck.",
		Actions: []catalog.ActionID{catalog.ActionNext},
	}, nil
}

// Reset reinitializes the player's run: defaults, cleared flags and
// inventory, back to the naming scene.
func (s *Service) Reset(ctx context.Context, playerID string) (*state.PlayerState, engine.Output, error) {
	ps, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, engine.Output{}, fmt.Errorf("failed to load player: %w", err)
	}

	ps.Reset()
	if err := s.store.SavePlayer(ctx, ps); err != nil {
		return nil, engine.Output{}, fmt.Errorf("failed to save player: %w", err)
	}

	s.logger.Info("Player reset", "player", playerID)
	return ps, engine.Output{
		Text: "Game fully reset!\n\nWelcome to the Zone, stalker. Type your name:",
	}, nil
}

// Dispatch resolves an action for the player: one read of the current
// state, one synchronous engine pass, one write of the result.
// Ordinary player input never produces an error; only store failures
// propagate, and then the player's state is left unmodified.
func (s *Service) Dispatch(ctx context.Context, playerID string, action catalog.ActionID) (engine.Output, error) {
	ps, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return engine.Output{}, fmt.Errorf("failed to load player: %w", err)
	}

	out := s.engine.Dispatch(ps, action)

	if err := s.store.SavePlayer(ctx, ps); err != nil {
		return engine.Output{}, fmt.Errorf("failed to save player: %w", err)
	}

	return out, nil
}

// HandleText resolves free-form text input: during the naming scene it
// completes onboarding with the text as the chosen name; anywhere else
// it nudges the player back to the action buttons.
func (s *Service) HandleText(ctx context.Context, playerID, text string) (engine.Output, error) {
	ps, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return engine.Output{}, fmt.Errorf("failed to load player: %w", err)
	}

	if ps.CurrentScene == catalog.SceneStart {
		_, out, err := s.CompleteNaming(ctx, playerID, text)
		return out, err
	}

	return engine.Output{
		Text: "Use the actions to interact with the game.\n" +
			"Open the menu if you need your stats or inventory.",
		Actions: catalog.SceneActions(ps.CurrentScene),
	}, nil
}

// InventoryView returns the player's inventory view without mutating
// state.
func (s *Service) InventoryView(ctx context.Context, playerID string) (engine.Output, error) {
	ps, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return engine.Output{}, fmt.Errorf("failed to load player: %w", err)
	}
	return engine.InventoryView(ps), nil
}

// StatsView returns the player's stats view without mutating state.
func (s *Service) StatsView(ctx context.Context, playerID string) (engine.Output, error) {
	ps, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return engine.Output{}, fmt.Errorf("failed to load player: %w", err)
	}
	return engine.StatsView(ps), nil
}

// GetPlayer returns the player's raw persisted state (debug view).
func (s *Service) GetPlayer(ctx context.Context, playerID string) (*state.PlayerState, error) {
	ps, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	return ps, nil
}
