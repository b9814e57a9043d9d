package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
)

// TestApplicationRepository_Create_Duplicate - не более одного отклика
// на пару пользователь/вакансия
func TestApplicationRepository_Create_Duplicate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)

	owner := seedUser(t, db, "owner@test.com", models.UserRoleCompany)
	company := seedCompany(t, db, owner.ID)
	job := seedJob(t, db, company.ID, "Contested Role", "Engineering")
	applicant := seedUser(t, db, "applicant@test.com", models.UserRoleUser)

	first := &models.Application{UserID: applicant.ID, JobID: job.ID}
	require.NoError(t, repo.Create(first))

	second := &models.Application{UserID: applicant.ID, JobID: job.ID}
	assert.ErrorIs(t, repo.Create(second), repositories.ErrAlreadyApplied)

	// Другой пользователь откликается свободно
	other := seedUser(t, db, "other@test.com", models.UserRoleUser)
	assert.NoError(t, repo.Create(&models.Application{UserID: other.ID, JobID: job.ID}))
}

// TestApplicationRepository_FindByUserID - сортировка от новых к старым
func TestApplicationRepository_FindByUserID(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)

	owner := seedUser(t, db, "owner@test.com", models.UserRoleCompany)
	company := seedCompany(t, db, owner.ID)
	jobOne := seedJob(t, db, company.ID, "Role One", "Engineering")
	jobTwo := seedJob(t, db, company.ID, "Role Two", "Engineering")
	applicant := seedUser(t, db, "applicant@test.com", models.UserRoleUser)

	require.NoError(t, repo.Create(&models.Application{UserID: applicant.ID, JobID: jobOne.ID}))
	require.NoError(t, repo.Create(&models.Application{UserID: applicant.ID, JobID: jobTwo.ID}))

	apps, err := repo.FindByUserID(applicant.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

// TestApplicationRepository_UpdateStatus - несуществующий id дает ошибку
func TestApplicationRepository_UpdateStatus(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)

	owner := seedUser(t, db, "owner@test.com", models.UserRoleCompany)
	company := seedCompany(t, db, owner.ID)
	job := seedJob(t, db, company.ID, "Reviewed Role", "Engineering")
	applicant := seedUser(t, db, "applicant@test.com", models.UserRoleUser)

	application := &models.Application{UserID: applicant.ID, JobID: job.ID}
	require.NoError(t, repo.Create(application))

	require.NoError(t, repo.UpdateStatus(application.ID, models.ApplicationStatusAccepted))

	updated, err := repo.FindByID(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	err = repo.UpdateStatus("00000000-0000-0000-0000-000000000000", models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

// TestApplicationRepository_CountCreatedBetween - границы полуинтервала
func TestApplicationRepository_CountCreatedBetween(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)

	owner := seedUser(t, db, "window_owner@test.com", models.UserRoleCompany)
	company := seedCompany(t, db, owner.ID)
	job := seedJob(t, db, company.ID, "Windowed Role", "Engineering")
	applicant := seedUser(t, db, "window_applicant@test.com", models.UserRoleUser)

	require.NoError(t, repo.Create(&models.Application{UserID: applicant.ID, JobID: job.ID}))

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := repo.CountCreatedBetween(today, today.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountCreatedBetween(today.AddDate(0, 0, -1), today)
	require.NoError(t, err)
	assert.Zero(t, count)
}
