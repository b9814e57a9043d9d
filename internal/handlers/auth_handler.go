package handlers

import (
	"net/http"
	"strings"
	"time"

	"nexues_backend/internal/services"
	"nexues_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refreshToken"

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	refreshTTL  time.Duration
	production  bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, refreshTTL time.Duration, production bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		refreshTTL:  refreshTTL,
		production:  production,
	}
}

// Register godoc
// @Summary Регистрация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные регистрации"
// @Success 201 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, pair, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	h.Created(c, response, "User registered successfully")
}

// Login godoc
// @Summary Вход по email и паролю
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учетные данные"
// @Success 200 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, pair, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	h.OKWithMessage(c, response, "Login successful")
}

// Refresh godoc
// @Summary Обновление пары токенов
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	// Сначала cookie, затем заголовок Authorization: окружения без
	// cookie (мобильные клиенты) передают refresh token как Bearer
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			refreshToken = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "No refresh token provided",
		})
		return
	}

	response, pair, err := h.authService.Refresh(refreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	h.OK(c, response)
}

// Logout godoc
// @Summary Выход: очистка refresh cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearRefreshCookie(c)
	h.Message(c, "Logged out successfully")
}

// Verify godoc
// @Summary Текущий пользователь по access токену
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.Verify(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"user": user})
}

// Profile godoc
// @Summary Текущий пользователь с анкетой, компанией и откликами
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.Profile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"user": user})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	sameSite := http.SameSiteLaxMode
	if h.production {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(refreshCookieName, token, int(h.refreshTTL.Seconds()), "/", "", h.production, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	sameSite := http.SameSiteLaxMode
	if h.production {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(refreshCookieName, "", -1, "/", "", h.production, true)
}
