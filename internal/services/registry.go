package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	CompanyService     CompanyService
	ProfileService     ProfileService
	AdminService       AdminService
	UploadService      UploadService
}
