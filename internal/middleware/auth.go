package middleware

import (
	"strings"

	"nexues_backend/internal/auth"
	"nexues_backend/internal/logger"
	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
	"nexues_backend/pkg/apperrors"
	"nexues_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка JWT.
// Принимается только схема Bearer. После проверки подписи делается
// ровно один запрос в базу: пользователь должен существовать и быть
// активным, иначе даже валидный токен бесполезен.
func AuthMiddleware(tokenManager *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokenManager.ParseAccessToken(tokenStr)
		if err != nil {
			if apperrors.Is(err, auth.ErrExpiredToken) {
				apperrors.HandleError(c, apperrors.NewUnauthorizedError("Token has expired"))
				return
			}
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid token - user not found"))
			return
		}
		if !user.IsActive {
			apperrors.HandleError(c, apperrors.ErrUserInactive)
			return
		}

		// Роль берем из базы, а не из токена: смена роли действует
		// сразу, не дожидаясь истечения access токена
		c.Set(contextkeys.UserIDKey, user.ID)
		c.Set(contextkeys.UserEmailKey, user.Email)
		c.Set(contextkeys.UserRoleKey, user.Role)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles пропускает только перечисленные роли.
// Отсутствие идентичности - 401, неподходящая роль - 403.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(contextkeys.UserRoleKey)
		if !exists {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				apperrors.HandleError(c, apperrors.ErrUnauthorized)
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

// AdminMiddleware - только для администраторов
func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin)
}

// CompanyMiddleware - только для работодателей
func CompanyMiddleware() gin.HandlerFunc {
	return RequireRoles(models.UserRoleCompany)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(contextkeys.UserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserRole извлекает роль пользователя из контекста
func GetUserRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(contextkeys.UserRoleKey)
	if !exists {
		return ""
	}

	if role, ok := roleVal.(models.UserRole); ok {
		return role
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr)
	}
	return ""
}
