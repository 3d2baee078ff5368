package orders

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DetailCache keeps sale read models in Redis. Sales are create-once and
// never edited, so a cached detail never goes stale.
type DetailCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDetailCache constructs a DetailCache. A nil client disables caching.
func NewDetailCache(client *redis.Client, ttl time.Duration) *DetailCache {
	return &DetailCache{client: client, ttl: ttl}
}

func detailKey(id int64) string {
	return "sales:detail:" + strconv.FormatInt(id, 10)
}

// Get returns the cached detail for a sale, or false on miss.
func (c *DetailCache) Get(ctx context.Context, id int64) (SaleDetail, bool) {
	if c == nil || c.client == nil {
		return SaleDetail{}, false
	}
	payload, err := c.client.Get(ctx, detailKey(id)).Bytes()
	if err != nil {
		return SaleDetail{}, false
	}
	var detail SaleDetail
	if err := json.Unmarshal(payload, &detail); err != nil {
		return SaleDetail{}, false
	}
	return detail, true
}

// Set stores the detail for a sale.
func (c *DetailCache) Set(ctx context.Context, detail SaleDetail) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, detailKey(detail.ID), payload, c.ttl).Err()
}
