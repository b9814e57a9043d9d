package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexues_backend/internal/models"
	"nexues_backend/test/helpers"
)

// TestApply_Success - соискатель откликается на вакансию
func TestApply_Success(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Open Position")

	userToken, user := helpers.CreateAndLoginApplicant(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/applications", userToken, map[string]interface{}{
		"jobId":       job.ID,
		"coverLetter": "I am a great fit",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Open Position")

	var application models.Application
	require.NoError(t, ts.DB.Where("user_id = ? AND job_id = ?", user.ID, job.ID).First(&application).Error)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
}

// TestApply_Duplicate - повторный отклик на ту же вакансию отклоняется
func TestApply_Duplicate(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Popular Position")

	userToken, _ := helpers.CreateAndLoginApplicant(t, ts)

	body := map[string]interface{}{"jobId": job.ID}
	res, _ := ts.SendRequest(t, "POST", "/api/applications", userToken, body)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/applications", userToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "You have already applied for this job")

	// В базе ровно один отклик
	var count int64
	ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestApply_JobNotFound - отклик на несуществующую вакансию
func TestApply_JobNotFound(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	userToken, _ := helpers.CreateAndLoginApplicant(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/applications", userToken, map[string]interface{}{
		"jobId": "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Job not found")
}

// TestApply_CompanyRoleForbidden - работодатель не откликается на вакансии
func TestApply_CompanyRoleForbidden(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Own Position")

	res, _ := ts.SendRequest(t, "POST", "/api/applications", companyToken, map[string]interface{}{
		"jobId": job.ID,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestApplicationsList_Mine - пользователь видит только свои отклики
func TestApplicationsList_Mine(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	jobOne := helpers.CreateTestJob(t, ts.DB, company.ID, "First Position")
	jobTwo := helpers.CreateTestJob(t, ts.DB, company.ID, "Second Position")

	userToken, user := helpers.CreateAndLoginApplicant(t, ts)
	_, stranger := helpers.CreateAndLoginApplicant(t, ts)

	helpers.CreateTestApplication(t, ts.DB, user.ID, jobOne.ID)
	helpers.CreateTestApplication(t, ts.DB, stranger.ID, jobTwo.ID)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/applications/me", userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "First Position")
	assert.NotContains(t, bodyStr, "Second Position")
}

// TestApplicationGet_ForeignForbidden - чужой отклик недоступен
func TestApplicationGet_ForeignForbidden(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Private Position")

	_, owner := helpers.CreateAndLoginApplicant(t, ts)
	application := helpers.CreateTestApplication(t, ts.DB, owner.ID, job.ID)

	strangerToken, _ := helpers.CreateAndLoginApplicant(t, ts)

	res, _ := ts.SendRequest(t, "GET", "/api/applications/"+application.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestApplicationWithdraw - владелец отзывает свой отклик
func TestApplicationWithdraw(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Withdrawable Position")

	userToken, user := helpers.CreateAndLoginApplicant(t, ts)
	application := helpers.CreateTestApplication(t, ts.DB, user.ID, job.ID)

	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/applications/"+application.ID, userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Application withdrawn successfully")

	var count int64
	ts.DB.Model(&models.Application{}).Where("id = ?", application.ID).Count(&count)
	assert.Zero(t, count)
}

// TestApplicationStatusUpdate_AdminOnly - прямой PATCH статуса
// доступен только администратору
// TestApplicationsList_AdminSeesAll - полный список откликов доступен только администратору
func TestApplicationsList_AdminSeesAll(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Audited Position")

	userToken, user := helpers.CreateAndLoginApplicant(t, ts)
	helpers.CreateTestApplication(t, ts.DB, user.ID, job.ID)

	res, _ := ts.SendRequest(t, "GET", "/api/applications", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin_list@test.com", "Password123", models.UserRoleAdmin)
	res, bodyStr := ts.SendRequest(t, "GET", "/api/applications", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
}

func TestApplicationStatusUpdate_AdminOnly(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Reviewed Position")

	userToken, user := helpers.CreateAndLoginApplicant(t, ts)
	application := helpers.CreateTestApplication(t, ts.DB, user.ID, job.ID)

	body := map[string]interface{}{"status": "ACCEPTED"}

	res, _ := ts.SendRequest(t, "PATCH", "/api/applications/"+application.ID+"/status", userToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin_app@test.com", "Password123", models.UserRoleAdmin)
	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/applications/"+application.ID+"/status", adminToken, body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Application status updated successfully")

	var updated models.Application
	require.NoError(t, ts.DB.First(&updated, "id = ?", application.ID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)
}
