package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"translator-backend/internal/config"
	"translator-backend/internal/database"
	"translator-backend/internal/repository"
)

// TranslationCache stores translated text keyed by a content hash.
// repository.CacheRepository is the database backed implementation.
type TranslationCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	EvictExpired(ctx context.Context) (int64, error)
	Flush(ctx context.Context) error
}

func NewTranslationCache(cfg config.TranslationConfig, db *database.Database) (TranslationCache, error) {
	switch cfg.CacheDriver {
	case config.CacheDriverDatabase, "":
		return repository.NewCacheRepository(db), nil
	case config.CacheDriverMemory:
		return NewMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.CacheDriver)
	}
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is a process local TranslationCache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || !c.now().Before(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryCache) Put(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{value: value, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *MemoryCache) EvictExpired(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var evicted int64
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted, nil
}

func (c *MemoryCache) Flush(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]memoryEntry)
	return nil
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
