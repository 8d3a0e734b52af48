package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value      []byte
	expireAt   time.Time
	accessedAt time.Time
}

func (e *memoryEntry) expired(now time.Time) bool {
	return now.After(e.expireAt)
}

// MemoryStore is an in-process Store with LRU eviction and a background
// sweep of expired entries. Safe for concurrent use.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]*memoryEntry
	maxEntries int
	ticker     *time.Ticker
	done       chan struct{}
}

// NewMemoryStore creates an in-memory cache.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	cfg := &MemoryConfig{
		MaxEntries:      1000,
		CleanupInterval: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ms := &MemoryStore{
		entries:    make(map[string]*memoryEntry),
		maxEntries: cfg.MaxEntries,
		ticker:     time.NewTicker(cfg.CleanupInterval),
		done:       make(chan struct{}),
	}
	go ms.sweep()
	return ms
}

func (ms *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.entries[key]; !ok && len(ms.entries) >= ms.maxEntries {
		ms.evictOldest()
	}

	now := time.Now()
	expireAt := now.Add(ttl)
	if ttl <= 0 {
		expireAt = now.Add(24 * time.Hour)
	}

	ms.entries[key] = &memoryEntry{
		value:      value,
		expireAt:   expireAt,
		accessedAt: now,
	}
	return nil
}

func (ms *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, ok := ms.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	now := time.Now()
	if entry.expired(now) {
		delete(ms.entries, key)
		return nil, ErrMiss
	}

	entry.accessedAt = now
	return entry.value, nil
}

func (ms *MemoryStore) Delete(_ context.Context, keys ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, key := range keys {
		delete(ms.entries, key)
	}
	return nil
}

func (ms *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, ok := ms.entries[key]
	return ok && !entry.expired(time.Now()), nil
}

// caller holds ms.mu
func (ms *MemoryStore) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, entry := range ms.entries {
		if oldestKey == "" || entry.accessedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.accessedAt
		}
	}
	if oldestKey != "" {
		delete(ms.entries, oldestKey)
	}
}

func (ms *MemoryStore) sweep() {
	for {
		select {
		case <-ms.done:
			return
		case <-ms.ticker.C:
			ms.mu.Lock()
			now := time.Now()
			for key, entry := range ms.entries {
				if entry.expired(now) {
					delete(ms.entries, key)
				}
			}
			ms.mu.Unlock()
		}
	}
}

// Close stops the background sweep.
func (ms *MemoryStore) Close() error {
	ms.ticker.Stop()
	close(ms.done)
	return nil
}
