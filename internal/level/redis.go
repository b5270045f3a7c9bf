package level

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dungeoncrawl:level:"

// RedisSource reads level descriptions stored as strings in Redis.
type RedisSource struct {
	client *redis.Client
}

// NewRedisSource creates a Redis-backed level source.
func NewRedisSource(client *redis.Client) *RedisSource {
	if client == nil {
		panic("redis client is required")
	}
	return &RedisSource{client: client}
}

// Key returns the Redis key holding level n.
func Key(n int) string {
	return fmt.Sprintf("%s%d", keyPrefix, n)
}

// Load fetches and parses level n.
func (s *RedisSource) Load(ctx context.Context, n int) (*Level, error) {
	return load(ctx, "redis", n, func(ctx context.Context) ([]byte, error) {
		raw, err := s.client.Get(ctx, Key(n)).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, Key(n))
			}
			return nil, err
		}
		return raw, nil
	})
}

// Put stores lvl as level n.
func (s *RedisSource) Put(ctx context.Context, n int, lvl *Level) error {
	if lvl == nil || lvl.Grid == nil || lvl.Player == nil {
		return errors.New("level with grid and player is required")
	}
	if n < 1 {
		return fmt.Errorf("invalid level number %d", n)
	}
	return s.client.Set(ctx, Key(n), Format(lvl), 0).Err()
}
