package auth

import (
	"errors"
	"time"

	"nexues_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken - подпись не сошлась или payload неполный
	ErrMalformedToken = errors.New("malformed token")
	// ErrExpiredToken - срок действия токена истек
	ErrExpiredToken = errors.New("token has expired")
)

// Claims - полезная нагрузка токена: ровно {id, role, email}
// плюс стандартные iat/exp
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	Email  string          `json:"email"`
	jwt.RegisteredClaims
}

// TokenConfig - конфигурация менеджера токенов.
// Access и refresh подписываются РАЗНЫМИ секретами: токен одного
// вида не проходит проверку как токен другого вида.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// DefaultTokenConfig - dev-значения; секреты обязаны приходить из
// конфигурации в production
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		AccessSecret:  "dev-access-secret-change-me",
		RefreshSecret: "dev-refresh-secret-change-me",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "nexues_backend",
	}
}

// TokenManager выпускает и проверяет подписанные токены.
// Состояния на сервере нет: вся информация в самом токене.
type TokenManager struct {
	config TokenConfig
}

func NewTokenManager(config TokenConfig) *TokenManager {
	return &TokenManager{config: config}
}

// GenerateAccessToken выпускает короткоживущий access token
func (m *TokenManager) GenerateAccessToken(userID string, role models.UserRole, email string) (string, error) {
	return m.generate(userID, role, email, m.config.AccessTTL, m.config.AccessSecret)
}

// GenerateRefreshToken выпускает долгоживущий refresh token
func (m *TokenManager) GenerateRefreshToken(userID string, role models.UserRole, email string) (string, error) {
	return m.generate(userID, role, email, m.config.RefreshTTL, m.config.RefreshSecret)
}

func (m *TokenManager) generate(userID string, role models.UserRole, email string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken проверяет access token и возвращает claims
func (m *TokenManager) ParseAccessToken(tokenString string) (*Claims, error) {
	return m.parse(tokenString, m.config.AccessSecret)
}

// ParseRefreshToken проверяет refresh token и возвращает claims
func (m *TokenManager) ParseRefreshToken(tokenString string) (*Claims, error) {
	return m.parse(tokenString, m.config.RefreshSecret)
}

func (m *TokenManager) parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformedToken
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformedToken
	}

	// Обязательные поля: без id и role токену доверять нельзя
	if claims.UserID == "" || claims.Role == "" {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// AccessTTL возвращает время жизни access токена
func (m *TokenManager) AccessTTL() time.Duration {
	return m.config.AccessTTL
}

// RefreshTTL возвращает время жизни refresh токена
func (m *TokenManager) RefreshTTL() time.Duration {
	return m.config.RefreshTTL
}
