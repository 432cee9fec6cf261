// Package usecase implements the business logic for item operations.
package usecase

import "errors"

var (
	// ErrItemNotFound is returned when no item exists with the given ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNameTaken is returned when creating or renaming an item to a name
	// that another item already uses.
	ErrItemNameTaken = errors.New("item name already exists")
)
