package dto

// RegisterResp is the response body for a successful registration.
// The password is never echoed back.
type RegisterResp struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenResp is the response body for a successful login.
// The key name matches the access-token convention used by API clients.
type TokenResp struct {
	Access string `json:"access"`
}
