package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shopfront/api/internal/models"
)

const productListKey = "products:all"

// ProductCache is a read-through cache over the public catalogue listing.
// Failures degrade to a miss; the database stays the source of truth.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewProductCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, ttl: ttl, log: log}
}

func (c *ProductCache) GetList(ctx context.Context) ([]models.Product, bool) {
	raw, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("product cache read failed")
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Msg("product cache decode failed")
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetList(ctx context.Context, products []models.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, productListKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("product cache write failed")
	}
}

// Invalidate drops the cached listing after an admin write.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, productListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("product cache invalidate failed")
	}
}
