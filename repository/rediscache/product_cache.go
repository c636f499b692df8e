// Package rediscache wraps a ProductRepository with a read-through Redis
// cache. Cache faults never surface to callers: a miss or a broken entry
// falls through to the backing repository, and write-back failures are only
// logged.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shopflow/storekit/domain"
	"github.com/shopflow/storekit/pkg/apperr"
	"github.com/shopflow/storekit/pkg/result"
	"github.com/shopflow/storekit/repository"
)

const (
	productKeyFormat = "catalog:product:%d"
	categoriesKey    = "catalog:categories"
)

// Store is the slice of the go-redis API the cache needs. *redis.Client and
// redis.UniversalClient both satisfy it.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ProductCache is a caching decorator over a ProductRepository. Single
// products and the category list are cached; listing and search pages pass
// through.
type ProductCache struct {
	next   repository.ProductRepository
	rdb    Store
	ttl    time.Duration
	logger *zap.Logger
}

func New(next repository.ProductRepository, rdb Store, ttl time.Duration, logger *zap.Logger) *ProductCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductCache{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

var _ repository.ProductRepository = (*ProductCache)(nil)

func (c *ProductCache) List(ctx context.Context, page repository.Page) result.Result[domain.ProductPage] {
	return c.next.List(ctx, page)
}

func (c *ProductCache) Search(ctx context.Context, query string, page repository.Page) result.Result[domain.ProductPage] {
	return c.next.Search(ctx, query, page)
}

func (c *ProductCache) ListByCategory(ctx context.Context, category string, page repository.Page) result.Result[domain.ProductPage] {
	return c.next.ListByCategory(ctx, category, page)
}

func (c *ProductCache) GetByID(ctx context.Context, id int) result.Result[domain.Product] {
	key := fmt.Sprintf(productKeyFormat, id)
	return lookup[domain.Product](ctx, c, key).Catch(func(err apperr.AppError) result.Result[domain.Product] {
		if !apperr.IsCache(err) {
			return result.Failure[domain.Product](err)
		}
		if !apperr.IsKind(err, apperr.KindCacheMiss) {
			c.logger.Warn("product cache degraded", zap.String("key", key), zap.Error(err))
		}
		return c.next.GetByID(ctx, id).Tee(func(p domain.Product) {
			c.store(ctx, key, p)
		})
	})
}

func (c *ProductCache) Categories(ctx context.Context) result.Result[[]domain.Category] {
	return lookup[[]domain.Category](ctx, c, categoriesKey).Catch(func(err apperr.AppError) result.Result[[]domain.Category] {
		if !apperr.IsCache(err) {
			return result.Failure[[]domain.Category](err)
		}
		if !apperr.IsKind(err, apperr.KindCacheMiss) {
			c.logger.Warn("category cache degraded", zap.String("key", categoriesKey), zap.Error(err))
		}
		return c.next.Categories(ctx).Tee(func(cats []domain.Category) {
			c.store(ctx, categoriesKey, cats)
		})
	})
}

// lookup reads one cache entry. Absence maps to CacheMissError, transport
// and decode faults to CacheError, so callers can route every cache-layer
// failure through a single Catch.
func lookup[T any](ctx context.Context, c *ProductCache, key string) result.Result[T] {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return result.Failure[T](apperr.NewCacheMiss("entry not cached", key))
	}
	if err != nil {
		return result.Failure[T](apperr.NewCache("cache read failed", err))
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return result.Failure[T](apperr.NewCache("cache entry corrupted", err))
	}
	return result.Success(v)
}

func (c *ProductCache) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
