package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedSummary is one stored per-(filter, category) summary entry.
type CachedSummary struct {
	Summary  string `json:"summary"`
	FullText string `json:"full_text"`
}

// SummaryCache stores per-slot summaries. Entries expire rather than being
// actively invalidated; a filter change addresses a different slot.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*CachedSummary, bool)
	Set(ctx context.Context, key string, entry *CachedSummary)
}

const summaryTTL = 30 * time.Minute

// MemorySummaryCache is the in-process fallback used when Redis is not
// configured.
type MemorySummaryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     CachedSummary
	expiresAt time.Time
}

func NewMemorySummaryCache() *MemorySummaryCache {
	return &MemorySummaryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemorySummaryCache) Get(_ context.Context, key string) (*CachedSummary, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	value := entry.value
	return &value, true
}

func (c *MemorySummaryCache) Set(_ context.Context, key string, entry *CachedSummary) {
	c.mu.Lock()
	c.entries[key] = memoryEntry{value: *entry, expiresAt: time.Now().Add(summaryTTL)}
	c.mu.Unlock()
}

// RedisSummaryCache shares summaries across dashboard replicas.
type RedisSummaryCache struct {
	rdb *redis.Client
}

func NewRedisSummaryCache(rdb *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{rdb: rdb}
}

func (c *RedisSummaryCache) Get(ctx context.Context, key string) (*CachedSummary, bool) {
	raw, err := c.rdb.Get(ctx, "plan:summary:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	var entry CachedSummary
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

func (c *RedisSummaryCache) Set(ctx context.Context, key string, entry *CachedSummary) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, "plan:summary:"+key, raw, summaryTTL)
}
