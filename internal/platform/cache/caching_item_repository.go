// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"item_backend/internal/feature/items/domain/entity"
	"item_backend/internal/feature/items/usecase"
)

// DefaultItemTTL is the lifetime of a cached item snapshot.
// Expiry itself is handled by Redis; this repository never inspects the
// remaining TTL of an entry.
const DefaultItemTTL = 15 * time.Minute

// CachingItemRepository decorates an ItemRepository with a read-through
// Redis cache keyed per item. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
//
// Coherence rules:
//   - FindByID is read-through: a hit returns the cached snapshot verbatim,
//     a miss reads the store and populates the cache.
//   - Update and Delete remove the item's cache entry only after the store
//     mutation has succeeded, and before returning to the caller.
//   - Create and List never touch the cache.
type CachingItemRepository struct {
	inner  usecase.ItemRepository
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// CachingItemRepositoryがItemRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ItemRepository = (*CachingItemRepository)(nil)

// NewCachingItemRepository decorates an ItemRepository with Redis caching.
// If ttl is 0 or negative, it defaults to DefaultItemTTL. If prefix is empty,
// it uses "item". A nil Redis client disables caching entirely.
func NewCachingItemRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ItemRepository, prefix string) *CachingItemRepository {
	if ttl <= 0 {
		ttl = DefaultItemTTL
	}
	if prefix == "" {
		prefix = "item"
	}
	return &CachingItemRepository{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		prefix: prefix,
	}
}

// cacheKey generates the cache key for one item, e.g. "item_42".
func (c *CachingItemRepository) cacheKey(id uint) string {
	return fmt.Sprintf("%s_%d", c.prefix, id)
}

// Create delegates to the underlying repository. The cache is not touched:
// no entry can exist yet for an ID the store has not assigned.
func (c *CachingItemRepository) Create(ctx context.Context, item *entity.Item) error {
	return c.inner.Create(ctx, item)
}

// FindByID retrieves an item, checking the cache first and falling back to
// the store. NotFound results are propagated without populating the cache.
func (c *CachingItemRepository) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Item
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store the snapshot in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Update writes to the store first, then unconditionally deletes the item's
// cache entry so the next read repopulates from the authoritative store.
// The deletion completes before Update returns; a failed deletion fails the
// whole operation so a success response never leaves a stale entry behind.
//
// Known race: a concurrent FindByID between the store write and the cache
// deletion may re-cache the pre-update snapshot. That entry lives until the
// next mutation or TTL expiry. Closing the window would require a
// transactional boundary across store and cache, which this system does not
// have.
func (c *CachingItemRepository) Update(ctx context.Context, id uint, name, description string) (*entity.Item, error) {
	item, err := c.inner.Update(ctx, id, name, description)
	if err != nil {
		// Failed store writes must not touch the cache.
		return nil, err
	}
	if c.rdb != nil {
		if err := c.rdb.Del(ctx, c.cacheKey(id)).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("failed to invalidate cache for item %d: %w", id, err)
		}
	}
	return item, nil
}

// Delete removes the item's cache entry, then the store row. Redis DEL is
// idempotent, so deleting an absent entry is a no-op and either order is
// safe; deleting the entry first guarantees a deleted item cannot be served
// from cache after the store row is gone.
func (c *CachingItemRepository) Delete(ctx context.Context, id uint) error {
	if c.rdb != nil {
		if err := c.rdb.Del(ctx, c.cacheKey(id)).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to invalidate cache for item %d: %w", id, err)
		}
	}
	return c.inner.Delete(ctx, id)
}

// List always reads the store directly; listings are never cached.
func (c *CachingItemRepository) List(ctx context.Context) ([]entity.Item, error) {
	return c.inner.List(ctx)
}
