package models

// Application - отклик пользователя на вакансию.
// Не более одного отклика на пару (UserID, JobID); инвариант
// обеспечивается pre-check запросом при создании, а не constraint-ом.
type Application struct {
	BaseModel
	UserID      string            `gorm:"not null;index" json:"userId"`
	JobID       string            `gorm:"not null;index" json:"jobId"`
	Resume      string            `json:"resume"`
	CoverLetter string            `json:"coverLetter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
