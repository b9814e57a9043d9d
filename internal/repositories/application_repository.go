package repositories

import (
	"errors"
	"time"

	"nexues_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("application already exists")
)

type ApplicationRepository interface {
	FindByID(id string) (*models.Application, error)
	FindByUserID(userID string) ([]models.Application, error)
	FindByJobID(jobID string) ([]models.Application, error)
	FindByIDAndJob(id, jobID string) (*models.Application, error)
	FindAll(limit, offset int) ([]models.Application, int64, error)
	FindRecent(limit int) ([]models.Application, error)
	Create(application *models.Application) error
	UpdateStatus(id string, status models.ApplicationStatus) error
	Delete(id string) error
	CountAll() (int64, error)
	CountCreatedBetween(from, to time.Time) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Job.Company").Preload("User").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByUserID(userID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Job.Company").Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByJobID(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("User").Preload("User.Profile").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByIDAndJob(id, jobID string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ? AND job_id = ?", id, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindAll(limit, offset int) ([]models.Application, int64, error) {
	var total int64
	if err := r.db.Model(&models.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.Application
	err := r.db.Preload("Job").Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

func (r *ApplicationRepositoryImpl) FindRecent(limit int) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Job.Company").Preload("User").
		Order("created_at DESC").Limit(limit).
		Find(&applications).Error
	return applications, err
}

// Create отклоняет повторный отклик на ту же вакансию.
// Уникальность пары (user_id, job_id) держится на pre-check запросе.
func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	var existing models.Application
	err := r.db.Where("user_id = ? AND job_id = ?", application.UserID, application.JobID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Count(&count).Error
	return count, err
}

// CountCreatedBetween считает отклики в полуинтервале [from, to)
func (r *ApplicationRepositoryImpl) CountCreatedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}
