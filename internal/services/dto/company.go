package dto

import "nexues_backend/internal/models"

// UpdateCompanyRequest - создание или изменение профиля компании
type UpdateCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Website     string `json:"website" binding:"omitempty,url"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`
}

// CompanyJobsQuery - параметры списка вакансий компании
type CompanyJobsQuery struct {
	Page   int              `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int              `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Status models.JobStatus `form:"status" binding:"omitempty,is-job-status"`
}
