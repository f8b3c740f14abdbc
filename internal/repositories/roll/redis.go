package roll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hexhaus/dicehall/internal/dice"
	"github.com/hexhaus/dicehall/internal/models"
)

const (
	// Key prefix for Redis
	rollKeyPrefix = "roll:"
)

// Config holds configuration for the Redis roll repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied to every saved roll; zero means no expiration
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis. Saving
// under an already-used id overwrites the previous value, matching the
// reference in-memory adapter.
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// storedRoll is the JSON shape persisted in Redis.
type storedRoll struct {
	ID        string      `json:"id"`
	Dices     []storedDie `json:"dices"`
	CreatedAt time.Time   `json:"created_at"`
}

type storedDie struct {
	Dice   string `json:"dice"`
	Result uint32 `json:"result"`
}

// NewRedis creates a new Redis-backed roll repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

// SaveRoll persists a roll to Redis
func (r *redisRepository) SaveRoll(ctx context.Context, input *SaveRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	stored := storedRoll{
		ID:        input.Roll.ID.String(),
		CreatedAt: input.Roll.CreatedAt,
	}
	for _, rolled := range input.Roll.Results.Rolled() {
		stored.Dices = append(stored.Dices, storedDie{
			Dice:   rolled.Dice().String(),
			Result: rolled.Result(),
		})
	}

	rollJSON, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal roll: %w", err)
	}

	rollKey := fmt.Sprintf("%s%s", rollKeyPrefix, input.Roll.ID)
	if err := r.client.Set(ctx, rollKey, rollJSON, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save roll: %w", err)
	}

	return nil
}

// GetRoll retrieves a roll by ID from Redis
func (r *redisRepository) GetRoll(ctx context.Context, input *GetRollInput) (*models.Roll, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	rollKey := fmt.Sprintf("%s%s", rollKeyPrefix, input.RollID)
	rollJSON, err := r.client.Get(ctx, rollKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRollNotFound
		}
		return nil, fmt.Errorf("failed to get roll: %w", err)
	}

	var stored storedRoll
	if err := json.Unmarshal([]byte(rollJSON), &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roll: %w", err)
	}

	return storedToRoll(&stored)
}

// storedToRoll rebuilds the domain roll from its persisted shape.
func storedToRoll(stored *storedRoll) (*models.Roll, error) {
	id, err := models.ParseRollId(stored.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored roll id %q: %w", stored.ID, err)
	}

	rolled := make([]dice.RolledDice, 0, len(stored.Dices))
	for _, entry := range stored.Dices {
		d, err := dice.ParseDice(entry.Dice)
		if err != nil {
			return nil, fmt.Errorf("failed to decode stored dice: %w", err)
		}
		rolled = append(rolled, dice.NewRolledDice(d, entry.Result))
	}

	return &models.Roll{
		ID:        id,
		Results:   dice.NewRolledDiceSet(rolled),
		CreatedAt: stored.CreatedAt,
	}, nil
}
