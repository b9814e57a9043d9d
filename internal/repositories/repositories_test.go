package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"nexues_backend/internal/models"
)

// newTestDB поднимает чистую in-memory базу для одного теста
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Не удалось открыть тестовую БД")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
		Name:         "Seed User",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCompany(t *testing.T, db *gorm.DB, userID string) *models.Company {
	t.Helper()

	company := &models.Company{
		UserID:      userID,
		CompanyName: "Seed Company",
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedJob(t *testing.T, db *gorm.DB, companyID, title, category string) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyID:       companyID,
		Title:           title,
		Description:     "Seed description",
		Location:        "Almaty",
		Category:        category,
		ExperienceLevel: "MIDDLE",
		EmploymentType:  "FULL_TIME",
		Status:          models.JobStatusOpen,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
