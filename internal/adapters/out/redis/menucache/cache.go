// Package menucache keeps rendered menu items in Redis for GetMenuItem.
// Redis failures never reach callers: a failed read is a miss and a failed
// write or delete is logged.
package menucache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 15 * time.Minute
	maxJitter  = 5 * time.Minute
)

type RedisMenuCache struct {
	client  redis.UniversalClient
	baseTTL time.Duration
	logger  *slog.Logger
}

// NewRedisMenuCache uses DefaultTTL when ttl is not positive.
func NewRedisMenuCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RedisMenuCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisMenuCache{
		client:  client,
		baseTTL: ttl,
		logger:  logger.With("component", "menu_cache"),
	}
}

func (c *RedisMenuCache) Get(ctx context.Context, id kernel.UUID) (queries.MenuItemView, bool) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return queries.MenuItemView{}, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "redis get failed", "menu_item_id", id.String(), "error", err)
		return queries.MenuItemView{}, false
	}

	var view queries.MenuItemView
	if err := json.Unmarshal(data, &view); err != nil {
		c.logger.WarnContext(ctx, "unmarshal menu item failed", "menu_item_id", id.String(), "error", err)
		return queries.MenuItemView{}, false
	}
	return view, true
}

func (c *RedisMenuCache) Set(ctx context.Context, item queries.MenuItemView) {
	data, err := json.Marshal(item)
	if err != nil {
		c.logger.WarnContext(ctx, "marshal menu item failed", "menu_item_id", item.ID.String(), "error", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(item.ID), data, c.ttl()).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis set failed", "menu_item_id", item.ID.String(), "error", err)
	}
}

// Invalidate drops the entry for id. Missing keys are not an error.
func (c *RedisMenuCache) Invalidate(ctx context.Context, id kernel.UUID) {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis delete failed", "menu_item_id", id.String(), "error", err)
	}
}

// ttl spreads expirations so entries written together do not expire together.
func (c *RedisMenuCache) ttl() time.Duration {
	return c.baseTTL + rand.N(maxJitter)
}

func cacheKey(id kernel.UUID) string {
	return fmt.Sprintf("menu_item:%s", id)
}
