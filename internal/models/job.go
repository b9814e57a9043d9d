package models

import "gorm.io/datatypes"

// Job - вакансия, принадлежит ровно одной компании
type Job struct {
	BaseModel
	CompanyID       string                      `gorm:"not null;index" json:"companyId"`
	Title           string                      `gorm:"not null" json:"title"`
	Description     string                      `gorm:"not null" json:"description"`
	Location        string                      `gorm:"not null" json:"location"`
	Category        string                      `gorm:"not null;index" json:"category"`
	ExperienceLevel string                      `gorm:"not null" json:"experienceLevel"`
	EmploymentType  string                      `gorm:"not null" json:"employmentType"`
	Salary          *float64                    `json:"salary"`
	Remote          bool                        `gorm:"default:false" json:"remote"`
	Status          JobStatus                   `gorm:"type:varchar(20);not null;default:'OPEN';index" json:"status"`
	Requirements    datatypes.JSONSlice[string] `json:"requirements"`
	Benefits        datatypes.JSONSlice[string] `json:"benefits"`

	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`

	// Заполняется репозиторием отдельным запросом, в базе не хранится
	ApplicationsCount int64 `gorm:"-" json:"applicationsCount,omitempty"`
}
