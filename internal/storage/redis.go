// Package storage provides the Redis-backed implementation of the
// player store contract.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/state"
	"github.com/boxes360/stalker-bot/pkg/storage"
)

const playerKeyPrefix = "player:"

// RedisStore implements the PlayerStore contract with one Redis record
// per player.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements PlayerStore interface
var _ storage.PlayerStore = (*RedisStore)(nil)

// NewRedisStore creates a new Redis-backed player store.
func NewRedisStore(redisURL string, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &RedisStore{
		client: redis.NewClient(opt),
		logger: logger,
	}, nil
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

// Health and lifecycle methods

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	s.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during
// startup), retrying with exponential backoff.
func (s *RedisStore) WaitForConnection(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 10 * time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if err := s.Ping(ctx); err != nil {
			s.logger.Debug("Redis not ready yet", "error", err)
			return struct{}{}, err
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(time.Minute))
	if err != nil {
		return fmt.Errorf("redis did not become available: %w", err)
	}

	s.logger.Info("Redis connection established")
	return nil
}

// Player operations

// GetPlayer loads the player's record, lazily creating and persisting
// defaults when the record is missing or unreadable. Dispatch logic
// never sees a corrupt record.
func (s *RedisStore) GetPlayer(ctx context.Context, playerID string) (*state.PlayerState, error) {
	cmd := s.client.Get(ctx, playerKey(playerID))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return s.createDefault(ctx, playerID)
		}
		s.logger.Error("Failed to load player", "player", playerID, "error", err)
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	var ps state.PlayerState
	if err := json.Unmarshal([]byte(cmd.Val()), &ps); err != nil {
		s.logger.Warn("Corrupt player record, resetting to defaults", "player", playerID, "error", err)
		return s.createDefault(ctx, playerID)
	}

	return &ps, nil
}

func (s *RedisStore) createDefault(ctx context.Context, playerID string) (*state.PlayerState, error) {
	ps := state.NewPlayerState(playerID)
	if err := s.SavePlayer(ctx, ps); err != nil {
		return nil, err
	}
	s.logger.Info("Created default player record", "player", playerID)
	return ps, nil
}

// SavePlayer overwrites the player's record. Player records do not
// expire; a run is never deleted, only reset.
func (s *RedisStore) SavePlayer(ctx context.Context, ps *state.PlayerState) error {
	ps.Touch()

	data, err := json.Marshal(ps)
	if err != nil {
		s.logger.Error("Failed to marshal player", "player", ps.ID, "error", err)
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	if err := s.client.Set(ctx, playerKey(ps.ID), string(data), 0).Err(); err != nil {
		s.logger.Error("Failed to save player", "player", ps.ID, "error", err)
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// AddItem adds an item to the player's inventory with set semantics.
func (s *RedisStore) AddItem(ctx context.Context, playerID string, itemID catalog.ItemID) error {
	ps, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if !ps.AddItem(itemID) {
		return nil
	}
	return s.SavePlayer(ctx, ps)
}

// RemoveItem removes an item from the player's inventory.
func (s *RedisStore) RemoveItem(ctx context.Context, playerID string, itemID catalog.ItemID) error {
	ps, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if !ps.RemoveItem(itemID) {
		return nil
	}
	return s.SavePlayer(ctx, ps)
}

// DeletePlayer removes the player's record.
func (s *RedisStore) DeletePlayer(ctx context.Context, playerID string) error {
	if err := s.client.Del(ctx, playerKey(playerID)).Err(); err != nil {
		s.logger.Error("Failed to delete player", "player", playerID, "error", err)
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}
