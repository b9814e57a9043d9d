package app

import (
	"errors"
	"fmt"
	"time"

	"nexues_backend/internal/auth"
	"nexues_backend/internal/config"
	"nexues_backend/internal/handlers"
	"nexues_backend/internal/logger"
	"nexues_backend/internal/middleware"
	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
	"nexues_backend/internal/routes"
	"nexues_backend/internal/services"
	"nexues_backend/internal/storage"
	"nexues_backend/internal/validator"
	"nexues_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(!cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate прогоняет миграции по всем моделям
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokenManager := newTokenManager(cfg)
	userRepo := repositories.NewUserRepository(gormDB)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, tokenManager, userRepo)
	appHandlers := initializeHandlers(cfg, serviceContainer, tokenManager)

	ginRouter := initializeGinRouter(cfg, gormDB)

	limiter := newRateLimiter(cfg)
	routes.SetupRoutes(ginRouter, appHandlers, tokenManager, userRepo, limiter, routes.RateLimits{
		APIRequests: cfg.RateLimit.APIRequests,
		APIWindow:   time.Duration(cfg.RateLimit.APIWindowMin) * time.Minute,
		AuthRequest: cfg.RateLimit.AuthRequests,
		AuthWindow:  time.Duration(cfg.RateLimit.AuthWindowMin) * time.Minute,
	})

	return ginRouter
}

// newTokenManager собирает менеджер токенов из конфигурации.
// Пустые секреты допустимы только вне production: подставляются
// dev-значения с громким предупреждением в лог.
func newTokenManager(cfg *config.Config) *auth.TokenManager {
	tokenConfig := auth.DefaultTokenConfig()

	if cfg.JWT.AccessSecret != "" {
		tokenConfig.AccessSecret = cfg.JWT.AccessSecret
	} else {
		logger.Warn("JWT access secret is not set, using insecure development default")
	}
	if cfg.JWT.RefreshSecret != "" {
		tokenConfig.RefreshSecret = cfg.JWT.RefreshSecret
	} else {
		logger.Warn("JWT refresh secret is not set, using insecure development default")
	}
	if cfg.JWT.AccessTTLMinutes > 0 {
		tokenConfig.AccessTTL = time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute
	}
	if cfg.JWT.RefreshTTLDays > 0 {
		tokenConfig.RefreshTTL = time.Duration(cfg.JWT.RefreshTTLDays) * 24 * time.Hour
	}

	return auth.NewTokenManager(tokenConfig)
}

// newRateLimiter создает лимитер, если настроен Redis.
// Без Redis лимитов нет, middleware превращается в no-op.
func newRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	if cfg.Redis.Addr == "" {
		logger.Warn("Redis is not configured, rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	logger.Info("Rate limiting enabled", "redis", cfg.Redis.Addr)

	return middleware.NewRateLimiter(client, "ratelimit:")
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	tokenManager *auth.TokenManager,
	userRepo repositories.UserRepository,
) *services.ServiceContainer {
	companyRepo := repositories.NewCompanyRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, tokenManager),
		JobService:         services.NewJobService(jobRepo, companyRepo, userRepo, appRepo),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo),
		CompanyService:     services.NewCompanyService(companyRepo, jobRepo, appRepo),
		ProfileService:     services.NewProfileService(userRepo),
		AdminService:       services.NewAdminService(userRepo, jobRepo, appRepo),
		UploadService:      services.NewUploadService(storageInstance, cfg.Upload.MaxResumeSize, cfg.Upload.MaxLogoSize),
	}
}

func initializeHandlers(
	cfg *config.Config,
	container *services.ServiceContainer,
	tokenManager *auth.TokenManager,
) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService, tokenManager.RefreshTTL(), cfg.IsProduction()),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, container.CompanyService, container.JobService),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.ProfileService),
		AdminHandler:       handlers.NewAdminHandler(baseHandler, container.AdminService),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, container.UploadService),
		FileHandler:        handlers.NewFileHandler(baseHandler, container.UploadService),
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	adminProfile := &models.Profile{
		UserID:   newAdmin.ID,
		FullName: "Administrator",
	}
	if err := tx.Create(adminProfile).Error; err != nil {
		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return tx.Commit().Error
}
