package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nexues_backend/internal/models"
)

// CreateUser создает пользователя напрямую в базе.
// Сырой пароль хешируется автоматически, чтобы тесты
// могли логиниться через API тем же значением.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashed)
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	user.IsActive = true

	require.NoError(t, db.Create(user).Error, "Создание тестового пользователя не должно вызывать ошибку")
}

// CreateAndLoginUser создает пользователя и логинит его через API.
// Возвращает access-токен и созданного пользователя.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse), "Не удалось распарсить JSON ответа логина")
	require.NotEmpty(t, loginResponse.Data.Token, "Токен не должен быть пустым")

	return loginResponse.Data.Token, user
}

// CreateAndLoginCompany создает работодателя с профилем компании
func CreateAndLoginCompany(t *testing.T, ts *TestServer) (string, *models.User, *models.Company) {
	t.Helper()

	email := fmt.Sprintf("company_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, "Test Employer", email, "Password123", models.UserRoleCompany)

	company := &models.Company{
		UserID:      user.ID,
		CompanyName: "Test Company Inc.",
		Industry:    "IT",
		Location:    "Almaty",
	}
	require.NoError(t, ts.DB.Create(company).Error, "Не удалось создать профиль компании")

	return token, user, company
}

// CreateAndLoginApplicant создает соискателя с уникальным email
func CreateAndLoginApplicant(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()

	email := fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Applicant", email, "Password123", models.UserRoleUser)
}

// CreateTestJob создает вакансию напрямую в базе
func CreateTestJob(t *testing.T, db *gorm.DB, companyID, title string) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyID:       companyID,
		Title:           title,
		Description:     "Test description",
		Location:        "Almaty",
		Category:        "Engineering",
		ExperienceLevel: "MIDDLE",
		EmploymentType:  "FULL_TIME",
		Status:          models.JobStatusOpen,
	}
	require.NoError(t, db.Create(job).Error, "Не удалось создать тестовую вакансию")
	return job
}

// CreateTestApplication создает отклик напрямую в базе
func CreateTestApplication(t *testing.T, db *gorm.DB, userID, jobID string) *models.Application {
	t.Helper()

	application := &models.Application{
		UserID: userID,
		JobID:  jobID,
		Status: models.ApplicationStatusPending,
	}
	require.NoError(t, db.Create(application).Error, "Не удалось создать тестовый отклик")
	return application
}
