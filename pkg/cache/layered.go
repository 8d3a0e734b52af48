package cache

import (
	"context"
	"time"
)

// LayeredStore reads through an in-process memory layer backed by Redis.
// Writes go to Redis first so restarts never lose the authoritative copy.
type LayeredStore struct {
	memory *MemoryStore
	redis  *RedisStore
}

// NewLayeredStore creates a two-level store on top of an existing Redis store.
func NewLayeredStore(redis *RedisStore, opts ...MemoryOption) *LayeredStore {
	return &LayeredStore{
		memory: NewMemoryStore(opts...),
		redis:  redis,
	}
}

func (ls *LayeredStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ls.redis.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	_ = ls.memory.Set(ctx, key, value, ttl)
	return nil
}

func (ls *LayeredStore) Get(ctx context.Context, key string) ([]byte, error) {
	if data, err := ls.memory.Get(ctx, key); err == nil {
		return data, nil
	}

	data, err := ls.redis.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	_ = ls.memory.Set(ctx, key, data, 0)
	return data, nil
}

func (ls *LayeredStore) Delete(ctx context.Context, keys ...string) error {
	_ = ls.memory.Delete(ctx, keys...)
	return ls.redis.Delete(ctx, keys...)
}

func (ls *LayeredStore) Exists(ctx context.Context, key string) (bool, error) {
	if ok, _ := ls.memory.Exists(ctx, key); ok {
		return true, nil
	}
	return ls.redis.Exists(ctx, key)
}

// Close closes both layers.
func (ls *LayeredStore) Close() error {
	_ = ls.memory.Close()
	return ls.redis.Close()
}
