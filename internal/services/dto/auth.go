package dto

import "nexues_backend/internal/models"

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Role     models.UserRole `json:"role" binding:"omitempty,is-user-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse - пользователь плюс access token.
// Refresh token уходит отдельно, в HttpOnly cookie.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// TokenPair - пара токенов, живет только внутри сервисного слоя
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
