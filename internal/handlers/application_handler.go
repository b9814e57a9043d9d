package handlers

import (
	"nexues_backend/internal/middleware"
	"nexues_backend/internal/services"
	"nexues_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

// Create godoc
// @Summary Отклик на вакансию
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Отклик"
// @Success 201 {object} map[string]interface{}
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.appService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, application, "")
}

// ListMine godoc
// @Summary Отклики текущего пользователя
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /applications/me [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.appService.ListByUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, applications)
}

// GetByID godoc
// @Summary Отклик по id (владелец или администратор)
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID отклика"
// @Success 200 {object} map[string]interface{}
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	application, err := h.appService.GetByID(userID, middleware.GetUserRole(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, application)
}

// UpdateStatus godoc
// @Summary Смена статуса отклика (admin)
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID отклика"
// @Param request body dto.UpdateApplicationStatusRequest true "Новый статус"
// @Success 200 {object} map[string]interface{}
// @Router /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.appService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OKWithMessage(c, application, "Application status updated successfully")
}

// Withdraw godoc
// @Summary Отзыв собственного отклика
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID отклика"
// @Success 200 {object} map[string]interface{}
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.appService.Withdraw(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Application withdrawn successfully")
}
