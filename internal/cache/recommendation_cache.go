// Package cache stores serialized recommendation results in Redis so repeat
// lookups skip both the database and the engine.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-guidance/internal/common/logger"
	"career-guidance/internal/common/metrics"
	"career-guidance/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no entry exists for the key.
var ErrCacheMiss = errors.New("recommendation cache miss")

// RecommendationCache is a Redis-backed cache of RecommendationResult values
// keyed by (userID, answerSetID).
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// New creates a recommendation cache with the given entry TTL.
func New(client *redis.Client, ttl time.Duration, log logger.Logger) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "cache"}),
	}
}

func cacheKey(userID, answerSetID string) string {
	return fmt.Sprintf("rec:%s:%s", userID, answerSetID)
}

// Get loads a cached result. Returns ErrCacheMiss when absent; corrupt
// entries are deleted and reported as misses.
func (c *RecommendationCache) Get(ctx context.Context, userID, answerSetID string) (*models.RecommendationResult, error) {
	key := cacheKey(userID, answerSetID)

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecommendationCacheMisses.WithLabelValues("redis").Inc()
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var result models.RecommendationResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		c.logger.Warn("dropping corrupt cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		c.client.Del(ctx, key)
		metrics.RecommendationCacheMisses.WithLabelValues("redis").Inc()
		return nil, ErrCacheMiss
	}

	metrics.RecommendationCacheHits.WithLabelValues("redis").Inc()
	return &result, nil
}

// Set stores a result under its (userID, answerSetID) key.
func (c *RecommendationCache) Set(ctx context.Context, result *models.RecommendationResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	key := cacheKey(result.UserID, result.AnswerSetID)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Invalidate removes the entry for one (userID, answerSetID) pair.
func (c *RecommendationCache) Invalidate(ctx context.Context, userID, answerSetID string) error {
	return c.client.Del(ctx, cacheKey(userID, answerSetID)).Err()
}
