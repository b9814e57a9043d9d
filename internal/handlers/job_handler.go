package handlers

import (
	"nexues_backend/internal/services"
	"nexues_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// List godoc
// @Summary Поиск по открытым вакансиям
// @Tags jobs
// @Produce json
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Param search query string false "Поиск по названию и описанию"
// @Success 200 {object} map[string]interface{}
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.jobService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, response)
}

// GetStats godoc
// @Summary Статистика по вакансиям
// @Tags jobs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /jobs/stats [get]
func (h *JobHandler) GetStats(c *gin.Context) {
	stats, err := h.jobService.GetStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, stats)
}

// GetRecommendations godoc
// @Summary Рекомендации по навыкам и прошлым откликам
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /jobs/recommendations [get]
func (h *JobHandler) GetRecommendations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.GetRecommendations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, jobs)
}

// GetByID godoc
// @Summary Вакансия по id
// @Tags jobs
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} map[string]interface{}
// @Router /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, job)
}

// GetSimilar godoc
// @Summary Похожие вакансии
// @Tags jobs
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} map[string]interface{}
// @Router /jobs/{id}/similar [get]
func (h *JobHandler) GetSimilar(c *gin.Context) {
	jobs, err := h.jobService.GetSimilar(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, jobs)
}

// Create godoc
// @Summary Публикация вакансии
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Вакансия"
// @Success 201 {object} map[string]interface{}
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
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

// Update godoc
// @Summary Изменение вакансии
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID вакансии"
// @Param request body dto.UpdateJobRequest true "Изменяемые поля"
// @Success 200 {object} map[string]interface{}
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, job)
}

// UpdateStatus godoc
// @Summary Открытие или закрытие вакансии
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID вакансии"
// @Param request body dto.UpdateJobStatusRequest true "Новый статус"
// @Success 200 {object} map[string]interface{}
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateStatus(userID, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, job)
}

// Delete godoc
// @Summary Удаление вакансии
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} map[string]interface{}
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Message(c, "Job deleted successfully")
}
