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

// TestJobList_Public - список вакансий доступен без токена,
// закрытые вакансии в выдачу не попадают
func TestJobList_Public(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	helpers.CreateTestJob(t, ts.DB, company.ID, "Go Developer")
	closed := helpers.CreateTestJob(t, ts.DB, company.ID, "Closed Job")
	require.NoError(t, ts.DB.Model(closed).Update("status", models.JobStatusClosed).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/jobs", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Go Developer")
	assert.NotContains(t, bodyStr, "Closed Job")

	var response struct {
		Data struct {
			Jobs       []models.Job `json:"jobs"`
			Pagination struct {
				Total      int64 `json:"total"`
				Page       int   `json:"page"`
				TotalPages int   `json:"totalPages"`
				HasMore    bool  `json:"hasMore"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, int64(1), response.Data.Pagination.Total)
	assert.Equal(t, 1, response.Data.Pagination.Page)
	assert.False(t, response.Data.Pagination.HasMore)
}

// TestJobList_Filters - поиск нечувствителен к регистру,
// фильтры по категории сужают выдачу
func TestJobList_Filters(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	helpers.CreateTestJob(t, ts.DB, company.ID, "Senior Golang Engineer")
	other := helpers.CreateTestJob(t, ts.DB, company.ID, "Product Designer")
	require.NoError(t, ts.DB.Model(other).Update("category", "Design").Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/jobs?search=gOlAnG", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Senior Golang Engineer")
	assert.NotContains(t, bodyStr, "Product Designer")

	res, bodyStr = ts.SendRequest(t, "GET", "/api/jobs?category=Design", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Product Designer")
	assert.NotContains(t, bodyStr, "Senior Golang Engineer")
}

// TestJobList_Pagination - limit=1 дает две страницы
func TestJobList_Pagination(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	helpers.CreateTestJob(t, ts.DB, company.ID, "Job One")
	helpers.CreateTestJob(t, ts.DB, company.ID, "Job Two")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/jobs?page=1&limit=1", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data struct {
			Jobs       []models.Job `json:"jobs"`
			Pagination struct {
				Total      int64 `json:"total"`
				TotalPages int   `json:"totalPages"`
				HasMore    bool  `json:"hasMore"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Len(t, response.Data.Jobs, 1)
	assert.Equal(t, int64(2), response.Data.Pagination.Total)
	assert.Equal(t, 2, response.Data.Pagination.TotalPages)
	assert.True(t, response.Data.Pagination.HasMore)
}

// TestJobCreate_RequiresCompanyRole - соискатель не может создавать вакансии
func TestJobCreate_RequiresCompanyRole(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	userToken, _ := helpers.CreateAndLoginApplicant(t, ts)

	jobBody := map[string]interface{}{
		"title":           "Backend Developer",
		"description":     "Build APIs",
		"location":        "Remote",
		"category":        "Engineering",
		"experienceLevel": "SENIOR",
		"employmentType":  "FULL_TIME",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/jobs", userToken, jobBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Без токена - 401
	res, _ = ts.SendRequest(t, "POST", "/api/jobs", "", jobBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestJobCreate_Success - работодатель создает вакансию
func TestJobCreate_Success(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, company := helpers.CreateAndLoginCompany(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs", companyToken, map[string]interface{}{
		"title":           "Backend Developer",
		"description":     "Build APIs in Go",
		"location":        "Almaty",
		"category":        "Engineering",
		"experienceLevel": "SENIOR",
		"employmentType":  "FULL_TIME",
		"salary":          500000,
		"requirements":    []string{"Go", "PostgreSQL"},
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Job created successfully")

	var job models.Job
	require.NoError(t, ts.DB.Where("title = ?", "Backend Developer").First(&job).Error)
	assert.Equal(t, company.ID, job.CompanyID)
	assert.Equal(t, models.JobStatusOpen, job.Status)
}

// TestJobCreate_WithoutCompanyProfile - роль COMPANY без профиля компании
func TestJobCreate_WithoutCompanyProfile(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "No Profile", "noprofile@test.com", "Password123", models.UserRoleCompany)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs", token, map[string]interface{}{
		"title":           "Orphan Job",
		"description":     "No company behind it",
		"location":        "Almaty",
		"category":        "Engineering",
		"experienceLevel": "JUNIOR",
		"employmentType":  "FULL_TIME",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Company profile not found")
}

// TestJobUpdate_ForeignJob - чужая вакансия выглядит как несуществующая
func TestJobUpdate_ForeignJob(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, ownerCompany := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, ownerCompany.ID, "Protected Job")

	intruderToken, _, _ := helpers.CreateAndLoginCompany(t, ts)

	res, _ := ts.SendRequest(t, "PUT", "/api/jobs/"+job.ID, intruderToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Вакансия не изменилась
	var unchanged models.Job
	require.NoError(t, ts.DB.First(&unchanged, "id = ?", job.ID).Error)
	assert.Equal(t, "Protected Job", unchanged.Title)
}

// TestJobStatusUpdate - владелец закрывает вакансию
func TestJobStatusUpdate(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Closable Job")

	res, _ := ts.SendRequest(t, "PATCH", "/api/jobs/"+job.ID+"/status", companyToken, map[string]interface{}{
		"status": "CLOSED",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Job
	require.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusClosed, updated.Status)

	// Невалидный статус отклоняется
	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/jobs/"+job.ID+"/status", companyToken, map[string]interface{}{
		"status": "ARCHIVED",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Validation failed")
}

// TestJobDelete_CascadesApplications - удаление вакансии чистит отклики
func TestJobDelete_CascadesApplications(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Doomed Job")

	_, applicant := helpers.CreateAndLoginApplicant(t, ts)
	helpers.CreateTestApplication(t, ts.DB, applicant.ID, job.ID)

	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/jobs/"+job.ID, companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Job deleted successfully")

	var jobCount, appCount int64
	ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).Count(&jobCount)
	ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&appCount)
	assert.Zero(t, jobCount)
	assert.Zero(t, appCount)
}

// TestJobSimilar - похожие вакансии: та же категория, без самой вакансии
func TestJobSimilar(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, company.ID, "Main Job")
	helpers.CreateTestJob(t, ts.DB, company.ID, "Similar Job")
	unrelated := helpers.CreateTestJob(t, ts.DB, company.ID, "Unrelated Job")
	require.NoError(t, ts.DB.Model(unrelated).Updates(map[string]interface{}{
		"category":         "Design",
		"experience_level": "JUNIOR",
	}).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/jobs/"+job.ID+"/similar", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Similar Job")
	assert.NotContains(t, bodyStr, "Main Job")
	assert.NotContains(t, bodyStr, "Unrelated Job")
}

// TestJobRecommendations - рекомендации по навыкам профиля,
// уже откликнутые вакансии исключаются
func TestJobRecommendations(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	matching := helpers.CreateTestJob(t, ts.DB, company.ID, "Golang Backend")
	require.NoError(t, ts.DB.Model(matching).Update("description", "We need golang expertise").Error)
	applied := helpers.CreateTestJob(t, ts.DB, company.ID, "Already Applied Job")
	require.NoError(t, ts.DB.Model(applied).Update("description", "golang too").Error)

	userToken, user := helpers.CreateAndLoginApplicant(t, ts)
	require.NoError(t, ts.DB.Create(&models.Profile{
		UserID: user.ID,
		Skills: []string{"golang"},
	}).Error)
	helpers.CreateTestApplication(t, ts.DB, user.ID, applied.ID)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/jobs/recommendations", userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Golang Backend")
	assert.NotContains(t, bodyStr, "Already Applied Job")
}

// TestJobRecommendations_AnyAuthenticatedRole - рекомендации доступны
// любому аутентифицированному пользователю, не только соискателям
func TestJobRecommendations_AnyAuthenticatedRole(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	companyToken, companyUser, _ := helpers.CreateAndLoginCompany(t, ts)
	require.NoError(t, ts.DB.Create(&models.Profile{
		UserID: companyUser.ID,
		Skills: []string{"hiring"},
	}).Error)

	res, _ := ts.SendRequest(t, "GET", "/api/jobs/recommendations", companyToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/jobs/recommendations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestJobStats - агрегаты по категориям и локациям
func TestJobStats(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, _, company := helpers.CreateAndLoginCompany(t, ts)
	helpers.CreateTestJob(t, ts.DB, company.ID, "Stats Job One")
	helpers.CreateTestJob(t, ts.DB, company.ID, "Stats Job Two")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/jobs/stats", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data struct {
			TotalJobs     int64 `json:"totalJobs"`
			CategoryStats []struct {
				Category string `json:"category"`
				Count    int64  `json:"count"`
			} `json:"categoryStats"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, int64(2), response.Data.TotalJobs)
	require.Len(t, response.Data.CategoryStats, 1)
	assert.Equal(t, "Engineering", response.Data.CategoryStats[0].Category)
	assert.Equal(t, int64(2), response.Data.CategoryStats[0].Count)
}

// TestJobGet_NotFound - несуществующий id дает 404
func TestJobGet_NotFound(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/jobs/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Job not found")
}
