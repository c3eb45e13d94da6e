// Package rediscache implementa el caché de lecturas por bodega sobre Redis.
// Guarda el snapshot del listado de una bodega+sede con TTL corto; cualquier
// escritura sobre la bodega lo invalida. Un fallo de Redis nunca bloquea la
// operación: el caller degrada a lectura directa del store.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Despensa-api/internal/application/stock"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

const bucketKeyPrefix = "bucket:"

var _ stock.BucketCache = (*BucketCache)(nil)

// BucketCache adaptador del puerto stock.BucketCache sobre go-redis.
type BucketCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBucketCache construye el caché con el cliente y la vigencia del snapshot.
func NewBucketCache(client *redis.Client, ttl time.Duration) *BucketCache {
	return &BucketCache{client: client, ttl: ttl}
}

func bucketKey(bucket, location string) string {
	return bucketKeyPrefix + bucket + ":" + location
}

// GetItems devuelve el snapshot cacheado, o (nil, nil) en miss.
func (c *BucketCache) GetItems(ctx context.Context, bucket, location string) ([]*entity.StockItem, error) {
	raw, err := c.client.Get(ctx, bucketKey(bucket, location)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var items []*entity.StockItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// Snapshot corrupto: tratarlo como miss y dejar que la escritura lo reemplace
		return nil, nil
	}
	return items, nil
}

// SetItems guarda el snapshot del listado con el TTL configurado.
func (c *BucketCache) SetItems(ctx context.Context, bucket, location string, items []*entity.StockItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, bucketKey(bucket, location), raw, c.ttl).Err()
}

// Invalidate borra el snapshot de la bodega tras una escritura.
func (c *BucketCache) Invalidate(ctx context.Context, bucket, location string) error {
	return c.client.Del(ctx, bucketKey(bucket, location)).Err()
}
