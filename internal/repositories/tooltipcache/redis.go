package tooltipcache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/hexbench/tooltip-api/internal/errors"
	redisclient "github.com/hexbench/tooltip-api/internal/redis"
)

const (
	cacheKeyPrefix = "tooltip:"
	defaultTTL     = 15 * time.Minute

	// Error messages
	errUnitIDEmpty = "cache key unit ID cannot be empty"
	errEntryNil    = "cache entry cannot be nil"
)

// Config holds dependencies for the Redis-backed tooltip cache.
type Config struct {
	Client redisclient.Client

	// TTL for cache entries; zero means the default.
	TTL time.Duration
}

// Validate ensures all required dependencies are present.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("TTL cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed tooltip cache repository.
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key.UnitID == "" {
		return nil, errors.InvalidArgument(errUnitIDEmpty)
	}

	key := cacheKeyPrefix + input.Key.String()
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no cached tooltip for %s", input.Key.String())
		}
		return nil, errors.Wrapf(err, "failed to get cached tooltip")
	}

	var entry Entry
	if err := json.Unmarshal([]byte(result), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal cached tooltip")
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Key.UnitID == "" {
		return nil, errors.InvalidArgument(errUnitIDEmpty)
	}
	if input.Entry == nil || input.Entry.Tooltip == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal cache entry")
	}

	key := cacheKeyPrefix + input.Key.String()
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set cached tooltip")
	}

	return &SetOutput{}, nil
}
