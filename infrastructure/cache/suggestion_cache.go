package cache

import (
	"context"
	"encoding/json"
	"time"

	"vidhub/domain/dto"
	"vidhub/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// ISuggestionCache fronts the suggestion resolver with a short-lived cache.
type ISuggestionCache interface {
	Get(ctx context.Context, key string) ([]dto.Suggestion, bool)
	Set(ctx context.Context, key string, entries []dto.Suggestion)
}

type SuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSuggestionCache wraps a Redis client; a nil client yields a cache that
// always misses, so search never depends on Redis availability.
func NewSuggestionCache(client *redis.Client, ttl time.Duration) ISuggestionCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SuggestionCache{client: client, ttl: ttl}
}

func (c *SuggestionCache) Get(ctx context.Context, key string) ([]dto.Suggestion, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var entries []dto.Suggestion
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.GetLogger().WithField("error", err).Warn("suggestion cache entry corrupt")
		return nil, false
	}
	return entries, true
}

func (c *SuggestionCache) Set(ctx context.Context, key string, entries []dto.Suggestion) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("suggestion cache set failed")
	}
}
