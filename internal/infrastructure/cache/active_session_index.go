package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	appcharging "github.com/chargehub/backend/internal/application/charging"
	"github.com/chargehub/backend/internal/infrastructure/config"
)

// RedisActiveSessionIndex mirrors the set of open charge sessions into Redis.
// Entries carry a TTL so an index that misses a removal eventually heals;
// the database remains the source of truth.
type RedisActiveSessionIndex struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

const (
	defaultKeyPrefix = "sessions:active:"
	defaultTTL       = 24 * time.Hour
)

// NewRedisActiveSessionIndex connects to Redis using the given configuration
func NewRedisActiveSessionIndex(cfg config.RedisConfig) (*RedisActiveSessionIndex, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisActiveSessionIndexWithClient(client, defaultKeyPrefix), nil
}

// NewRedisActiveSessionIndexWithClient creates an index over an existing client.
// Useful for testing or when sharing a client across components.
func NewRedisActiveSessionIndexWithClient(client *redis.Client, keyPrefix string) *RedisActiveSessionIndex {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisActiveSessionIndex{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       defaultTTL,
	}
}

func (s *RedisActiveSessionIndex) key(id uuid.UUID) string {
	return s.keyPrefix + id.String()
}

// Add records a session as open
func (s *RedisActiveSessionIndex) Add(ctx context.Context, session *appcharging.ChargeSessionView) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.client.Set(ctx, s.key(session.ID), data, s.ttl).Err()
}

// Remove drops a session from the open set
func (s *RedisActiveSessionIndex) Remove(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

// Get returns the indexed view of an open session, or nil when absent
func (s *RedisActiveSessionIndex) Get(ctx context.Context, id uuid.UUID) (*appcharging.ChargeSessionView, error) {
	result, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var view appcharging.ChargeSessionView
	if err := json.Unmarshal([]byte(result), &view); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &view, nil
}

// Close releases the underlying Redis connection
func (s *RedisActiveSessionIndex) Close() error {
	return s.client.Close()
}

// Ensure RedisActiveSessionIndex implements ActiveSessionIndex
var _ appcharging.ActiveSessionIndex = (*RedisActiveSessionIndex)(nil)
