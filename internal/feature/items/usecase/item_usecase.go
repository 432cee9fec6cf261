package usecase

import (
	"context"

	"item_backend/internal/feature/items/domain/entity"
)

// ItemRepository abstracts the persistence layer for item data.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters). The wired implementation is the caching
// decorator in platform/cache, which keeps the cache coherent on mutation.
type ItemRepository interface {
	// Create persists a new item. Returns ErrItemNameTaken when the name is
	// already in use.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID returns the item with the given ID, or ErrItemNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Item, error)

	// Update replaces the name and description of the item with the given ID.
	// Returns ErrItemNotFound for an unknown ID and ErrItemNameTaken when the
	// new name collides with another item.
	Update(ctx context.Context, id uint, name, description string) (*entity.Item, error)

	// Delete removes the item with the given ID, or returns ErrItemNotFound.
	Delete(ctx context.Context, id uint) error

	// List returns all items.
	List(ctx context.Context) ([]entity.Item, error)
}

// ItemUsecase provides business logic for item operations.
type ItemUsecase struct {
	repo ItemRepository
}

// NewItemUsecase creates a new ItemUsecase with the given repository.
func NewItemUsecase(r ItemRepository) *ItemUsecase {
	return &ItemUsecase{repo: r}
}

// ListItems returns all items directly from the repository.
func (u *ItemUsecase) ListItems(ctx context.Context) ([]entity.Item, error) {
	return u.repo.List(ctx)
}

// GetItem returns a single item by ID.
func (u *ItemUsecase) GetItem(ctx context.Context, id uint) (*entity.Item, error) {
	return u.repo.FindByID(ctx, id)
}

// CreateItem persists a new item with the given name and description.
func (u *ItemUsecase) CreateItem(ctx context.Context, name, description string) (*entity.Item, error) {
	item := &entity.Item{Name: name, Description: description}
	if err := u.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem replaces the name and description of an existing item.
func (u *ItemUsecase) UpdateItem(ctx context.Context, id uint, name, description string) (*entity.Item, error) {
	return u.repo.Update(ctx, id, name, description)
}

// DeleteItem removes an item by ID.
func (u *ItemUsecase) DeleteItem(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
