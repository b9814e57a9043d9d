package models

// User - учетная запись. Владеет профилем (для соискателей),
// компанией (для работодателей) и откликами.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"not null" json:"name"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"isActive"`

	// Relations
	Profile      *Profile      `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Company      *Company      `gorm:"foreignKey:UserID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:UserID" json:"applications,omitempty"`
}
