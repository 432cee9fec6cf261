// Package dto defines data transfer objects for the items feature's HTTP transport layer.
package dto

// ItemReq represents the request body for creating or updating an item.
// The name is required; the description may be empty.
type ItemReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
