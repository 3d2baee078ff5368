package products

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const listCacheKey = "products:list"

// ListCache keeps the product list in Redis between mutations. Every write
// path drops the key, so a stale list survives at most one TTL window.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache constructs a ListCache. A nil client disables caching.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{client: client, ttl: ttl}
}

// Get returns the cached product list, or false on miss.
func (c *ListCache) Get(ctx context.Context) ([]Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var products []Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false
	}
	return products, true
}

// Set stores the product list.
func (c *ListCache) Set(ctx context.Context, products []Product) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listCacheKey, payload, c.ttl).Err()
}

// Invalidate drops the cached list after a mutation.
func (c *ListCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, listCacheKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
