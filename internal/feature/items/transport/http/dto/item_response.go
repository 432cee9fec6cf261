package dto

// ItemResp represents a single item in API responses.
type ItemResp struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
