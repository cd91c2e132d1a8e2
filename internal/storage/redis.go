package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores values as plain Redis strings under prefix+key.
type RedisSlot struct {
	client *redis.Client
	prefix string
}

// NewRedisSlot wraps client. The slot owns the client and closes it on Close.
func NewRedisSlot(client *redis.Client, prefix string) *RedisSlot {
	if client == nil {
		panic("storage.NewRedisSlot: client is nil")
	}
	return &RedisSlot{client: client, prefix: prefix}
}

// Get reads the value stored under key.
func (s *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Set overwrites the value stored under key, without expiry.
func (s *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}
