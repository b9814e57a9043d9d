package handlers

import (
	"nexues_backend/internal/services"
	"nexues_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
	jobService     services.JobService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService, jobService services.JobService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
		jobService:     jobService,
	}
}

// GetProfile godoc
// @Summary Профиль компании текущего пользователя
// @Tags company
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /company/profile [get]
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if company == nil {
		h.OKWithMessage(c, nil, "Company profile not created yet")
		return
	}
	h.OK(c, company)
}

// UpdateProfile godoc
// @Summary Создание или изменение профиля компании
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateCompanyRequest true "Профиль компании"
// @Success 200 {object} map[string]interface{}
// @Router /company/profile [put]
func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, company)
}

// ListJobs godoc
// @Summary Вакансии компании
// @Tags company
// @Security BearerAuth
// @Produce json
// @Param page query int false "Страница"
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} map[string]interface{}
// @Router /company/jobs [get]
func (h *CompanyHandler) ListJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.CompanyJobsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.companyService.ListJobs(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, response)
}

// CreateJob godoc
// @Summary Публикация вакансии из кабинета компании
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Вакансия"
// @Success 201 {object} map[string]interface{}
// @Router /company/jobs [post]
func (h *CompanyHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, job, "Job created successfully")
}

// UpdateJob godoc
// @Summary Изменение вакансии из кабинета компании
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Param request body dto.UpdateJobRequest true "Изменяемые поля"
// @Success 200 {object} map[string]interface{}
// @Router /company/jobs/{jobId} [put]
func (h *CompanyHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(userID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, job)
}

// DeleteJob godoc
// @Summary Удаление вакансии из кабинета компании
// @Tags company
// @Security BearerAuth
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} map[string]interface{}
// @Router /company/jobs/{jobId} [delete]
func (h *CompanyHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Job deleted successfully")
}

// ListJobApplications godoc
// @Summary Отклики на вакансию компании
// @Tags company
// @Security BearerAuth
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} map[string]interface{}
// @Router /company/jobs/{jobId}/applications [get]
func (h *CompanyHandler) ListJobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.companyService.ListJobApplications(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, applications)
}

// UpdateApplicationStatus godoc
// @Summary Смена статуса отклика на вакансию компании
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Param applicationId path string true "ID отклика"
// @Param request body dto.UpdateApplicationStatusRequest true "Новый статус"
// @Success 200 {object} map[string]interface{}
// @Router /company/jobs/{jobId}/applications/{applicationId} [patch]
func (h *CompanyHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.companyService.UpdateApplicationStatus(
		userID, c.Param("jobId"), c.Param("applicationId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, application)
}

// GetStats godoc
// @Summary Сводка для дашборда компании
// @Tags company
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /company/stats [get]
func (h *CompanyHandler) GetStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.companyService.GetStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, stats)
}
