// Package cache provides TTL caches for fetched market data: an in-memory
// store, a Redis-backed store, and a layered combination of the two.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrMiss = errors.New("cache: key not found")

// Store defines cache operations. Values are opaque byte payloads;
// callers typically store JSON-encoded snapshots keyed by symbol and period.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// Key builds a cache key from namespace parts, e.g. Key("history", "AAPL", "1y").
func Key(parts ...string) string {
	key := ""
	for i, p := range parts {
		if i == 0 {
			key = p
			continue
		}
		key = fmt.Sprintf("%s:%s", key, p)
	}
	return key
}

// SetJSON marshals v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}
	return s.Set(ctx, key, data, ttl)
}

// GetJSON retrieves key and unmarshals it into dest.
// Returns ErrMiss when the key is absent or expired.
func GetJSON(ctx context.Context, s Store, key string, dest interface{}) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache: unmarshal %s: %w", key, err)
	}
	return nil
}
