package handlers

import (
	"nexues_backend/internal/services"
	"nexues_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewUserHandler(base *BaseHandler, profileService services.ProfileService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// GetProfile godoc
// @Summary Анкета текущего пользователя
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, profile)
}

// UpdateProfile godoc
// @Summary Создание или изменение анкеты
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Анкета"
// @Success 200 {object} map[string]interface{}
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.Update(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, profile)
}
