package handler

import "time"

// LoginRequest represents a login request
type LoginRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the issued access token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token  TokenResponse  `json:"token"`
	Person PersonResponse `json:"person"`
}

// LogoutResponse represents a logout response
type LogoutResponse struct {
	Message string `json:"message"`
}

// CurrentPersonResponse represents the authenticated principal
type CurrentPersonResponse struct {
	Person PersonResponse `json:"person"`
}
