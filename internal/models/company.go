package models

// Company - профиль работодателя, один-к-одному с User роли COMPANY
type Company struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null" json:"userId"`
	CompanyName string `gorm:"not null" json:"companyName"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Jobs []Job `gorm:"foreignKey:CompanyID" json:"jobs,omitempty"`
}
