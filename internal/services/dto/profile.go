package dto

// UpdateProfileRequest - анкета соискателя
type UpdateProfileRequest struct {
	FullName    string   `json:"fullName"`
	Bio         string   `json:"bio"`
	PhoneNumber string   `json:"phoneNumber"`
	Address     string   `json:"address"`
	Resume      string   `json:"resume"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Education   string   `json:"education"`
	LinkedIn    string   `json:"linkedIn" binding:"omitempty,url"`
	GitHub      string   `json:"github" binding:"omitempty,url"`
	Portfolio   string   `json:"portfolio" binding:"omitempty,url"`
}
