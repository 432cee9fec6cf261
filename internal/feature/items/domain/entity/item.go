// Package entity defines the domain entities for the items feature.
package entity

import "time"

// Item represents a single catalog item.
// The name is unique across all items; the description is free text.
type Item struct {
	// ID is the unique identifier for the item, assigned by the store.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the unique name of the item. Creating a second item with the
	// same name fails with a conflict.
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`

	// Description is a free-text description of the item.
	Description string `gorm:"size:1000" json:"description"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp when the item was last updated.
	UpdatedAt time.Time `json:"-"`
}
