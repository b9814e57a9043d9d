package routes

import (
	"net/http"
	"time"

	"nexues_backend/internal/auth"
	"nexues_backend/internal/handlers"
	"nexues_backend/internal/middleware"
	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RateLimits - лимиты запросов по группам маршрутов
type RateLimits struct {
	APIRequests int
	APIWindow   time.Duration
	AuthRequest int
	AuthWindow  time.Duration
}

// SetupRoutes регистрирует все маршруты приложения
func SetupRoutes(
	router *gin.Engine,
	h *handlers.AppHandlers,
	tokenManager *auth.TokenManager,
	userRepo repositories.UserRepository,
	limiter *middleware.RateLimiter,
	limits RateLimits,
) {
	authRequired := middleware.AuthMiddleware(tokenManager, userRepo)

	router.GET("/health", h.HealthHandler.Check)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(limiter, "api", limits.APIRequests, limits.APIWindow))

	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Job Board API"})
	})

	// Аутентификация: более жесткий лимит против перебора паролей
	authGroup := api.Group("/auth")
	{
		strict := middleware.RateLimitMiddleware(limiter, "auth", limits.AuthRequest, limits.AuthWindow)
		authGroup.POST("/register", strict, h.AuthHandler.Register)
		authGroup.POST("/login", strict, h.AuthHandler.Login)
		authGroup.POST("/refresh", h.AuthHandler.Refresh)
		authGroup.POST("/logout", h.AuthHandler.Logout)
		authGroup.GET("/verify", authRequired, h.AuthHandler.Verify)
		authGroup.GET("/profile", authRequired, h.AuthHandler.Profile)
	}

	// Вакансии: поиск публичный, изменения только для компаний
	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.JobHandler.List)
		jobs.GET("/stats", h.JobHandler.GetStats)
		jobs.GET("/recommendations", authRequired, h.JobHandler.GetRecommendations)
		jobs.GET("/:id", h.JobHandler.GetByID)
		jobs.GET("/:id/similar", h.JobHandler.GetSimilar)

		employer := middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin)
		jobs.POST("", authRequired, employer, h.JobHandler.Create)
		jobs.PUT("/:id", authRequired, employer, h.JobHandler.Update)
		jobs.PATCH("/:id/status", authRequired, employer, h.JobHandler.UpdateStatus)
		jobs.DELETE("/:id", authRequired, employer, h.JobHandler.Delete)
	}

	// Отклики
	applications := api.Group("/applications")
	applications.Use(authRequired)
	{
		applications.POST("", middleware.RequireRoles(models.UserRoleUser), h.ApplicationHandler.Create)
		applications.GET("", middleware.AdminMiddleware(), h.AdminHandler.ListApplications)
		applications.GET("/me", h.ApplicationHandler.ListMine)
		applications.GET("/:id", h.ApplicationHandler.GetByID)
		applications.PATCH("/:id/status", middleware.AdminMiddleware(), h.ApplicationHandler.UpdateStatus)
		applications.DELETE("/:id", h.ApplicationHandler.Withdraw)
	}

	// Кабинет компании
	company := api.Group("/company")
	company.Use(authRequired, middleware.CompanyMiddleware())
	{
		company.GET("/profile", h.CompanyHandler.GetProfile)
		company.PUT("/profile", h.CompanyHandler.UpdateProfile)
		company.GET("/jobs", h.CompanyHandler.ListJobs)
		company.POST("/jobs", h.CompanyHandler.CreateJob)
		company.PUT("/jobs/:jobId", h.CompanyHandler.UpdateJob)
		company.DELETE("/jobs/:jobId", h.CompanyHandler.DeleteJob)
		company.GET("/jobs/:jobId/applications", h.CompanyHandler.ListJobApplications)
		company.PATCH("/jobs/:jobId/applications/:applicationId/status", h.CompanyHandler.UpdateApplicationStatus)
		company.GET("/stats", h.CompanyHandler.GetStats)
	}

	// Анкета соискателя
	user := api.Group("/user")
	user.Use(authRequired)
	{
		user.GET("/profile", h.UserHandler.GetProfile)
		user.PUT("/profile", h.UserHandler.UpdateProfile)
	}

	// Администрирование
	admin := api.Group("/admin")
	admin.Use(authRequired, middleware.AdminMiddleware())
	{
		admin.GET("/stats", h.AdminHandler.GetDashboardStats)
		admin.GET("/analytics", h.AdminHandler.GetAnalytics)
		admin.GET("/users", h.AdminHandler.ListUsers)
		admin.PATCH("/users/:id/status", h.AdminHandler.UpdateUserStatus)
		admin.PATCH("/users/:id/role", h.AdminHandler.UpdateUserRole)
		admin.DELETE("/users/:id", h.AdminHandler.DeleteUser)
		admin.GET("/applications", h.AdminHandler.ListApplications)
		admin.GET("/jobs", h.AdminHandler.ListJobs)
		admin.DELETE("/jobs/:id", h.AdminHandler.DeleteJob)
	}

	// Загрузка и отдача файлов
	upload := api.Group("/upload")
	upload.Use(authRequired)
	{
		upload.POST("/resume", h.UploadHandler.UploadResume)
		upload.POST("/logo", middleware.CompanyMiddleware(), h.UploadHandler.UploadLogo)
	}

	api.GET("/files/*filepath", h.FileHandler.Serve)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}
