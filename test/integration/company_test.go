package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexues_backend/internal/models"
	"nexues_backend/test/helpers"
)

// TestCompanyProfile_UpsertAndGet - профиль компании создается через PUT
func TestCompanyProfile_UpsertAndGet(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Fresh Employer", "fresh@test.com", "Password123", models.UserRoleCompany)

	// Профиля еще нет - GET отвечает 200 с пустыми данными
	res, bodyStr := ts.SendRequest(t, "GET", "/api/company/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Company profile not created yet")

	res, _ = ts.SendRequest(t, "PUT", "/api/company/profile", token, map[string]interface{}{
		"companyName": "Acme Corp",
		"industry":    "Manufacturing",
		"location":    "Astana",
		"website":     "https://acme.example.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/company/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Acme Corp")

	// Повторный PUT обновляет, а не создает второй профиль
	res, _ = ts.SendRequest(t, "PUT", "/api/company/profile", token, map[string]interface{}{
		"companyName": "Acme Corp Renamed",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Company{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestCompanyJobs_List - компания видит свои вакансии с фильтром по статусу
func TestCompanyJobs_List(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, company := helpers.CreateAndLoginCompany(t, ts)
	helpers.CreateTestJob(t, ts.DB, company.ID, "Open Role")
	closed := helpers.CreateTestJob(t, ts.DB, company.ID, "Closed Role")
	require.NoError(t, ts.DB.Model(closed).Update("status", models.JobStatusClosed).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/company/jobs", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Open Role")
	assert.Contains(t, bodyStr, "Closed Role")

	res, bodyStr = ts.SendRequest(t, "GET", "/api/company/jobs?status=CLOSED", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Closed Role")
	assert.NotContains(t, bodyStr, "Open Role")
}

// TestCompanyJobLifecycle - вакансией можно управлять из кабинета компании
func TestCompanyJobLifecycle(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, _ := helpers.CreateAndLoginCompany(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/company/jobs", companyToken, map[string]interface{}{
		"title":           "Data Engineer",
		"description":     "Build pipelines",
		"location":        "Almaty",
		"category":        "Engineering",
		"experienceLevel": "MIDDLE",
		"employmentType":  "FULL_TIME",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Job created successfully")

	var job models.Job
	require.NoError(t, ts.DB.First(&job, "title = ?", "Data Engineer").Error)

	res, bodyStr = ts.SendRequest(t, "PUT", "/api/company/jobs/"+job.ID, companyToken, map[string]interface{}{
		"title": "Senior Data Engineer",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Senior Data Engineer")

	res, _ = ts.SendRequest(t, "DELETE", "/api/company/jobs/"+job.ID, companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).Count(&count).Error)
	assert.Zero(t, count)
}

// TestCompanyJobApplications - работодатель смотрит отклики на свою вакансию
func TestCompanyJobApplications(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Staffed Role")

	_, applicant := helpers.CreateAndLoginApplicant(t, ts)
	helpers.CreateTestApplication(t, ts.DB, applicant.ID, job.ID)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/company/jobs/"+job.ID+"/applications", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, applicant.Email)

	// Чужая компания получает 404 на тот же jobId
	intruderToken, _, _ := helpers.CreateAndLoginCompany(t, ts)
	res, _ = ts.SendRequest(t, "GET", "/api/company/jobs/"+job.ID+"/applications", intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestCompanyApplicationStatusUpdate - работодатель меняет статус отклика
func TestCompanyApplicationStatusUpdate(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Hiring Role")

	_, applicant := helpers.CreateAndLoginApplicant(t, ts)
	application := helpers.CreateTestApplication(t, ts.DB, applicant.ID, job.ID)

	res, _ := ts.SendRequest(t, "PATCH", "/api/company/jobs/"+job.ID+"/applications/"+application.ID+"/status", companyToken, map[string]interface{}{
		"status": "REVIEWING",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Application
	require.NoError(t, ts.DB.First(&updated, "id = ?", application.ID).Error)
	assert.Equal(t, models.ApplicationStatusReviewing, updated.Status)
}

// TestCompanyStats - счетчики вакансий и откликов
func TestCompanyStats(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Counted Role")
	closed := helpers.CreateTestJob(t, ts.DB, company.ID, "Closed Counted Role")
	require.NoError(t, ts.DB.Model(closed).Update("status", models.JobStatusClosed).Error)

	_, applicant := helpers.CreateAndLoginApplicant(t, ts)
	application := helpers.CreateTestApplication(t, ts.DB, applicant.ID, job.ID)
	_, second := helpers.CreateAndLoginApplicant(t, ts)
	reviewed := helpers.CreateTestApplication(t, ts.DB, second.ID, job.ID)
	require.NoError(t, ts.DB.Model(reviewed).Update("status", models.ApplicationStatusReviewing).Error)
	_ = application

	res, bodyStr := ts.SendRequest(t, "GET", "/api/company/stats", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data struct {
			ActiveJobs        int64 `json:"activeJobs"`
			TotalApplications int64 `json:"totalApplications"`
			NewApplications   int64 `json:"newApplications"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, int64(1), response.Data.ActiveJobs)
	assert.Equal(t, int64(2), response.Data.TotalApplications)
	assert.Equal(t, int64(1), response.Data.NewApplications)
}

// TestCompanyRoutes_RequireCompanyRole - соискателю /company недоступен
func TestCompanyRoutes_RequireCompanyRole(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	userToken, _ := helpers.CreateAndLoginApplicant(t, ts)

	res, _ := ts.SendRequest(t, "GET", "/api/company/profile", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
