package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexues_backend/internal/models"
	"nexues_backend/test/helpers"
)

// TestUserProfile_UpdateAndGet - анкета соискателя
func TestUserProfile_UpdateAndGet(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, user := helpers.CreateAndLoginApplicant(t, ts)
	require.NoError(t, ts.DB.Create(&models.Profile{UserID: user.ID, FullName: "Test Applicant"}).Error)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/user/profile", token, map[string]interface{}{
		"fullName": "Алия Тестова",
		"bio":      "Backend engineer",
		"skills":   []string{"go", "postgres"},
		"linkedIn": "https://linkedin.com/in/aliya",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Алия Тестова")

	res, bodyStr = ts.SendRequest(t, "GET", "/api/user/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Backend engineer")
	assert.Contains(t, bodyStr, "postgres")

	// В базе по-прежнему один профиль на пользователя
	var count int64
	ts.DB.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestUserProfile_InvalidURL - кривые ссылки отклоняются валидатором
func TestUserProfile_InvalidURL(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginApplicant(t, ts)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/user/profile", token, map[string]interface{}{
		"fullName": "Test",
		"linkedIn": "not-a-url",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Validation failed")
}

// TestUserProfile_RequiresAuth - без токена анкета недоступна
func TestUserProfile_RequiresAuth(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
