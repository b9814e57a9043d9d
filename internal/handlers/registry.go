package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	CompanyHandler     *CompanyHandler
	UserHandler        *UserHandler
	AdminHandler       *AdminHandler
	UploadHandler      *UploadHandler
	FileHandler        *FileHandler
	HealthHandler      *HealthHandler
}
