package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"digital-menu/internal/domain"
)

const (
	catalogKey    = "menu:catalog"
	itemStatsKey  = "menu:stats:"
	popularityKey = "menu:popularity"
)

// RedisCatalogCache keeps the last fetched catalog under a fixed key and the
// per-item view/order counters alongside it.
type RedisCatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{Client: client, TTL: ttl}
}

// GetCatalog returns the cached catalog, or nil when the key is absent.
func (c *RedisCatalogCache) GetCatalog(ctx context.Context) ([]domain.MenuItem, error) {
	data, err := c.Client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *RedisCatalogCache) SetCatalog(ctx context.Context, items []domain.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey, data, c.TTL).Err()
}

// IncrItemStat bumps one counter for the item; ordered items also climb the
// popularity leaderboard.
func (c *RedisCatalogCache) IncrItemStat(ctx context.Context, itemID, stat string) error {
	if err := c.Client.HIncrBy(ctx, itemStatsKey+itemID, stat, 1).Err(); err != nil {
		return err
	}
	if stat == "orders" {
		return c.Client.ZIncrBy(ctx, popularityKey, 1, itemID).Err()
	}
	return nil
}

// ItemStats reads the raw counters for one item; absent items yield an empty
// map.
func (c *RedisCatalogCache) ItemStats(ctx context.Context, itemID string) (map[string]string, error) {
	return c.Client.HGetAll(ctx, itemStatsKey+itemID).Result()
}
