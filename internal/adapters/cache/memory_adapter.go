package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/medicare-app/backend/internal/domain/providers"
)

// MemoryAdapter is a process-local CacheProvider used when Redis is not
// configured. Sessions and rate-limit state stored here do not survive a
// restart and are not shared between replicas.
type MemoryAdapter struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryAdapter creates a new in-memory cache adapter.
func NewMemoryAdapter() providers.CacheProvider {
	return &MemoryAdapter{items: make(map[string]memoryItem)}
}

// Get retrieves a value from the cache.
func (a *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	item, ok := a.items[key]
	a.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		a.mu.Lock()
		delete(a.items, key)
		a.mu.Unlock()
		return nil, nil
	}
	return item.value, nil
}

// Set stores a value with expiration in seconds.
func (a *MemoryAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	item := memoryItem{value: value}
	if expirationSeconds > 0 {
		item.expiresAt = time.Now().Add(time.Duration(expirationSeconds) * time.Second)
	}

	a.mu.Lock()
	a.items[key] = item
	a.mu.Unlock()
	return nil
}

// Delete removes a value from the cache.
func (a *MemoryAdapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	delete(a.items, key)
	a.mu.Unlock()
	return nil
}

// Increment atomically increments a counter. The expiry is set when the
// counter is created and left untouched afterwards.
func (a *MemoryAdapter) Increment(ctx context.Context, key string, expirationSeconds int) (int64, error) {
	now := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	item, ok := a.items[key]
	if !ok || (!item.expiresAt.IsZero() && now.After(item.expiresAt)) {
		item = memoryItem{}
		if expirationSeconds > 0 {
			item.expiresAt = now.Add(time.Duration(expirationSeconds) * time.Second)
		}
	}

	count, _ := strconv.ParseInt(string(item.value), 10, 64)
	count++
	item.value = []byte(strconv.FormatInt(count, 10))
	a.items[key] = item
	return count, nil
}

// Exists checks if a key exists in the cache.
func (a *MemoryAdapter) Exists(ctx context.Context, key string) (bool, error) {
	value, err := a.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return len(value) > 0, nil
}
