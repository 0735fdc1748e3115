package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jmorrisey/warren/pkg/game"
)

// RedisStorage implements the Storage interface using Redis. Character saves
// are plain JSON values; location modifications are an append-only list per
// character.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance from a redis:// URL.
func NewRedisStorage(redisURL string, logger *slog.Logger) (*RedisStorage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &RedisStorage{
		client: redis.NewClient(opts),
		logger: logger,
	}, nil
}

func characterKey(id string) string {
	return "character:" + id
}

func modificationsKey(id string) string {
	return "modifications:" + id
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveCharacterState(ctx context.Context, id string, cs *CharacterState) error {
	data, err := json.Marshal(cs)
	if err != nil {
		r.logger.Error("Failed to marshal character state", "character_id", id, "error", err)
		return fmt.Errorf("failed to marshal character state: %w", err)
	}

	if err := r.client.Set(ctx, characterKey(id), string(data), 0).Err(); err != nil {
		r.logger.Error("Failed to save character state", "character_id", id, "error", err)
		return fmt.Errorf("failed to save character state: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadCharacterState(ctx context.Context, id string) (*CharacterState, error) {
	data, err := r.client.Get(ctx, characterKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load character state", "character_id", id, "error", err)
		return nil, fmt.Errorf("failed to load character state: %w", err)
	}

	var cs CharacterState
	if err := json.Unmarshal([]byte(data), &cs); err != nil {
		r.logger.Error("Failed to unmarshal character state", "character_id", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal character state: %w", err)
	}
	return &cs, nil
}

func (r *RedisStorage) RecordLocationModification(ctx context.Context, id string, mod game.LocationModification) error {
	data, err := json.Marshal(mod)
	if err != nil {
		return fmt.Errorf("failed to marshal location modification: %w", err)
	}

	if err := r.client.RPush(ctx, modificationsKey(id), string(data)).Err(); err != nil {
		r.logger.Error("Failed to record location modification", "character_id", id, "error", err)
		return fmt.Errorf("failed to record location modification: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadLocationModifications(ctx context.Context, id string) ([]game.LocationModification, error) {
	entries, err := r.client.LRange(ctx, modificationsKey(id), 0, -1).Result()
	if err != nil {
		r.logger.Error("Failed to load location modifications", "character_id", id, "error", err)
		return nil, fmt.Errorf("failed to load location modifications: %w", err)
	}

	mods := make([]game.LocationModification, 0, len(entries))
	for _, entry := range entries {
		var mod game.LocationModification
		if err := json.Unmarshal([]byte(entry), &mod); err != nil {
			// One bad record must not block the rest of the replay log.
			r.logger.Warn("Skipping malformed location modification", "character_id", id, "error", err)
			continue
		}
		mods = append(mods, mod)
	}
	return mods, nil
}
