package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/logger"
)

const topSkillsCacheKey = "me-api:skills:top"

// RedisTopSkillsCache caches the top-skills ranking. Misses and Redis
// failures both read through to Postgres; a broken cache never breaks the
// endpoint.
type RedisTopSkillsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisTopSkillsCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) skill.TopCache {
	return &RedisTopSkillsCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *RedisTopSkillsCache) Get(ctx context.Context) ([]skill.ProjectCount, bool) {
	payload, err := c.rdb.Get(ctx, topSkillsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("top skills cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var entries []skill.ProjectCount
	if err := json.Unmarshal(payload, &entries); err != nil {
		c.logger.Warn("top skills cache payload corrupt, dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return entries, true
}

func (c *RedisTopSkillsCache) Set(ctx context.Context, entries []skill.ProjectCount) {
	payload, err := json.Marshal(entries)
	if err != nil {
		c.logger.Warn("top skills cache marshal failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, topSkillsCacheKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("top skills cache write failed", zap.Error(err))
	}
}

func (c *RedisTopSkillsCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, topSkillsCacheKey).Err(); err != nil {
		c.logger.Warn("top skills cache invalidation failed", zap.Error(err))
	}
}
