package dto

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}

// ExchangeCodeRequest is the payload for the Google OAuth code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
