package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
)

// TestCompanyRepository_Upsert - один профиль компании на пользователя
func TestCompanyRepository_Upsert(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCompanyRepository(db)

	user := seedUser(t, db, "employer@test.com", models.UserRoleCompany)

	require.NoError(t, repo.Upsert(&models.Company{
		UserID:      user.ID,
		CompanyName: "Initial Name",
	}))
	require.NoError(t, repo.Upsert(&models.Company{
		UserID:      user.ID,
		CompanyName: "Renamed",
		Industry:    "Fintech",
	}))

	company, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", company.CompanyName)

	var count int64
	db.Model(&models.Company{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestCompanyRepository_GetStats - активные вакансии и новые отклики
func TestCompanyRepository_GetStats(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCompanyRepository(db)

	owner := seedUser(t, db, "owner@test.com", models.UserRoleCompany)
	company := seedCompany(t, db, owner.ID)

	open := seedJob(t, db, company.ID, "Open Role", "Engineering")
	closed := seedJob(t, db, company.ID, "Closed Role", "Engineering")
	require.NoError(t, db.Model(closed).Update("status", models.JobStatusClosed).Error)

	applicant := seedUser(t, db, "applicant@test.com", models.UserRoleUser)
	require.NoError(t, db.Create(&models.Application{
		UserID: applicant.ID,
		JobID:  open.ID,
		Status: models.ApplicationStatusPending,
	}).Error)
	second := seedUser(t, db, "second@test.com", models.UserRoleUser)
	require.NoError(t, db.Create(&models.Application{
		UserID: second.ID,
		JobID:  open.ID,
		Status: models.ApplicationStatusReviewing,
	}).Error)

	stats, err := repo.GetStats(company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ActiveJobs)
	assert.Equal(t, int64(2), stats.TotalApplications)
	assert.Equal(t, int64(1), stats.NewApplications)
}

// TestCompanyRepository_FindByUserID_NotFound
func TestCompanyRepository_FindByUserID_NotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCompanyRepository(db)

	_, err := repo.FindByUserID("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repositories.ErrCompanyNotFound)
}
