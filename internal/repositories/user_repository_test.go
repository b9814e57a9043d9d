package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
)

// TestUserRepository_Create_DuplicateEmail - email уникален
func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	first := &models.User{
		Email:        "taken@test.com",
		PasswordHash: "hash",
		Name:         "First",
		Role:         models.UserRoleUser,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(first))

	second := &models.User{
		Email:        "taken@test.com",
		PasswordHash: "hash",
		Name:         "Second",
		Role:         models.UserRoleUser,
	}
	assert.ErrorIs(t, repo.Create(second), repositories.ErrUserAlreadyExists)
}

// TestUserRepository_FindByEmail - профиль и компания подгружаются
func TestUserRepository_FindByEmail(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	user := seedUser(t, db, "lookup@test.com", models.UserRoleCompany)
	seedCompany(t, db, user.ID)

	found, err := repo.FindByEmail("lookup@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.NotNil(t, found.Company)

	_, err = repo.FindByEmail("ghost@test.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

// TestUserRepository_UpsertProfile - повторный upsert не плодит записи
// и не трогает CreatedAt
func TestUserRepository_UpsertProfile(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	user := seedUser(t, db, "profile@test.com", models.UserRoleUser)

	require.NoError(t, repo.UpsertProfile(&models.Profile{
		UserID:   user.ID,
		FullName: "Original Name",
	}))

	original, err := repo.FindProfileByUserID(user.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpsertProfile(&models.Profile{
		UserID:   user.ID,
		FullName: "Updated Name",
		Bio:      "Now with bio",
	}))

	updated, err := repo.FindProfileByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.FullName)
	assert.Equal(t, original.ID, updated.ID)

	var count int64
	db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestUserRepository_UpdateActiveAndRole - точечные апдейты
func TestUserRepository_UpdateActiveAndRole(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	user := seedUser(t, db, "flags@test.com", models.UserRoleUser)

	require.NoError(t, repo.UpdateActive(user.ID, false))
	require.NoError(t, repo.UpdateRole(user.ID, models.UserRoleCompany))

	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, models.UserRoleCompany, updated.Role)
}

// TestUserRepository_CountByRole - счетчики для admin-дашборда
func TestUserRepository_CountByRole(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	seedUser(t, db, "u1@test.com", models.UserRoleUser)
	seedUser(t, db, "u2@test.com", models.UserRoleUser)
	seedUser(t, db, "c1@test.com", models.UserRoleCompany)
	seedUser(t, db, "a1@test.com", models.UserRoleAdmin)

	users, err := repo.CountByRole(models.UserRoleUser)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	total, err := repo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	recent, err := repo.FindRecent(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

// TestUserRepository_DeleteCascade - удаление работодателя забирает
// компанию, вакансии и отклики на них
func TestUserRepository_DeleteCascade(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	owner := seedUser(t, db, "cascade_owner@test.com", models.UserRoleCompany)
	company := seedCompany(t, db, owner.ID)
	job := seedJob(t, db, company.ID, "Cascade Role", "Engineering")

	applicant := seedUser(t, db, "cascade_applicant@test.com", models.UserRoleUser)
	require.NoError(t, db.Create(&models.Application{UserID: applicant.ID, JobID: job.ID}).Error)

	require.NoError(t, repo.DeleteCascade(owner.ID))

	var count int64
	require.NoError(t, db.Model(&models.Company{}).Where("id = ?", company.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Job{}).Where("company_id = ?", company.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Соискатель не задет
	_, err := repo.FindByID(applicant.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteCascade(owner.ID), repositories.ErrUserNotFound)
}
