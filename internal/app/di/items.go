// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	itemadapters "item_backend/internal/feature/items/adapters"
	"item_backend/internal/feature/items/usecase"
	"item_backend/internal/platform/cache"
)

// NewItemRepository creates the ItemRepository used by the item usecase.
// The MySQL repository is always the authoritative store; when Redis is
// available it is wrapped in the caching decorator with the standard item
// TTL. With a nil Redis client the decorator degrades to store-only access.
func NewItemRepository(rdb *redis.Client, db *gorm.DB) usecase.ItemRepository {
	inner := itemadapters.NewItemMySQL(db)
	return cache.NewCachingItemRepository(rdb, cache.DefaultItemTTL, inner, "item")
}
