package models

import "gorm.io/datatypes"

// Profile - анкета соискателя, один-к-одному с User
type Profile struct {
	BaseModel
	UserID      string                       `gorm:"uniqueIndex;not null" json:"userId"`
	FullName    string                       `json:"fullName"`
	Bio         string                       `json:"bio"`
	PhoneNumber string                       `json:"phoneNumber"`
	Address     string                       `json:"address"`
	Resume      string                       `json:"resume"`
	Skills      datatypes.JSONSlice[string]  `json:"skills"`
	Experience  string                       `json:"experience"`
	Education   string                       `json:"education"`
	LinkedIn    string                       `json:"linkedIn"`
	GitHub      string                       `json:"github"`
	Portfolio   string                       `json:"portfolio"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
