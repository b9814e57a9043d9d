package dto

import "nexues_backend/internal/models"

// CreateApplicationRequest - отклик на вакансию
type CreateApplicationRequest struct {
	JobID       string `json:"jobId" binding:"required"`
	Resume      string `json:"resume"`
	CoverLetter string `json:"coverLetter"`
}

// UpdateApplicationStatusRequest - смена статуса отклика
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,is-application-status"`
}

// ApplicationListResponse - отклики с пагинацией (admin-список)
type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}
