package dto

import "nexues_backend/internal/models"

// JobListQuery - параметры поиска вакансий
type JobListQuery struct {
	Page            int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit           int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Search          string `form:"search"`
	Location        string `form:"location"`
	Category        string `form:"category"`
	ExperienceLevel string `form:"experienceLevel"`
	EmploymentType  string `form:"employmentType"`
	Remote          *bool  `form:"remote"`
}

// CreateJobRequest - создание вакансии
type CreateJobRequest struct {
	Title           string           `json:"title" binding:"required"`
	Description     string           `json:"description" binding:"required"`
	Location        string           `json:"location" binding:"required"`
	Category        string           `json:"category" binding:"required"`
	ExperienceLevel string           `json:"experienceLevel" binding:"required"`
	EmploymentType  string           `json:"employmentType" binding:"required"`
	Salary          *float64         `json:"salary" binding:"omitempty,min=0"`
	Remote          bool             `json:"remote"`
	Status          models.JobStatus `json:"status" binding:"omitempty,is-job-status"`
	Requirements    []string         `json:"requirements"`
	Benefits        []string         `json:"benefits"`
}

// UpdateJobRequest - изменение вакансии; nil-поля не трогаем
type UpdateJobRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	Category        *string  `json:"category"`
	ExperienceLevel *string  `json:"experienceLevel"`
	EmploymentType  *string  `json:"employmentType"`
	Salary          *float64 `json:"salary" binding:"omitempty,min=0"`
	Remote          *bool    `json:"remote"`
	Requirements    []string `json:"requirements"`
	Benefits        []string `json:"benefits"`
}

// UpdateJobStatusRequest - смена статуса вакансии
type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" binding:"required,is-job-status"`
}

// JobListResponse - список вакансий с пагинацией
type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}
