package handlers

import (
	"nexues_backend/internal/services"
	"nexues_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// GetDashboardStats godoc
// @Summary Сводка для admin-дашборда
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/stats [get]
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, stats)
}

// ListUsers godoc
// @Summary Все пользователи
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Страница"
// @Success 200 {object} map[string]interface{}
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.adminService.ListUsers(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, response)
}

// ListApplications godoc
// @Summary Все отклики
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Страница"
// @Success 200 {object} map[string]interface{}
// @Router /admin/applications [get]
func (h *AdminHandler) ListApplications(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.adminService.ListApplications(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, response)
}

// UpdateUserStatus godoc
// @Summary Блокировка или разблокировка пользователя
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body dto.UpdateUserStatusRequest true "Новый статус"
// @Success 200 {object} map[string]interface{}
// @Router /admin/users/{id}/status [patch]
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.UpdateUserStatus(c.Param("id"), *req.IsActive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, user)
}

// UpdateUserRole godoc
// @Summary Смена роли пользователя
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body dto.UpdateUserRoleRequest true "Новая роль"
// @Success 200 {object} map[string]interface{}
// @Router /admin/users/{id}/role [patch]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.UpdateUserRole(c.Param("id"), req.Role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, user)
}

// GetAnalytics godoc
// @Summary Аналитика: отклики по дням, вакансии по категориям, лента событий
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/analytics [get]
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.adminService.GetAnalytics()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, analytics)
}

// DeleteUser godoc
// @Summary Удаление пользователя со всеми связанными данными
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} map[string]interface{}
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminService.DeleteUser(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "User deleted successfully")
}

// ListJobs godoc
// @Summary Все вакансии (модерация)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.adminService.ListJobs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, jobs)
}

// DeleteJob godoc
// @Summary Удаление любой вакансии
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} map[string]interface{}
// @Router /admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	if err := h.adminService.DeleteJob(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Job deleted successfully")
}
