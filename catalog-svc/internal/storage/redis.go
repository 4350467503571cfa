package storage

import (
	"context"
	"encoding/json"
	"time"

	"golden-fork/catalog-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const productListKey = "products:list"

// ProductCache keeps the full product list in Redis so menu reads skip
// Postgres. Writers invalidate it; the next read repopulates.
type ProductCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{Client: client, TTL: ttl}
}

func (c *ProductCache) GetList(ctx context.Context) ([]domain.Product, bool) {
	payload, err := c.Client.Get(ctx, productListKey).Bytes()
	if err != nil {
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetList(ctx context.Context, products []domain.Product) error {
	payload, _ := json.Marshal(products)
	return c.Client.Set(ctx, productListKey, payload, c.TTL).Err()
}

func (c *ProductCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, productListKey).Err()
}
