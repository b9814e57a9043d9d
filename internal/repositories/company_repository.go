package repositories

import (
	"errors"

	"nexues_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	FindByID(id string) (*models.Company, error)
	FindByUserID(userID string) (*models.Company, error)
	Upsert(company *models.Company) error

	// GetStats считает показатели дашборда компании
	GetStats(companyID string) (*CompanyStats, error)
}

// CompanyStats - сводка для дашборда работодателя
type CompanyStats struct {
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
	NewApplications   int64 `json:"newApplications"`
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("User").First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByUserID(userID string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// Upsert создает профиль компании при первом сохранении
func (r *CompanyRepositoryImpl) Upsert(company *models.Company) error {
	var existing models.Company
	err := r.db.First(&existing, "user_id = ?", company.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(company).Error
		}
		return err
	}
	company.ID = existing.ID
	company.CreatedAt = existing.CreatedAt
	return r.db.Save(company).Error
}

func (r *CompanyRepositoryImpl) GetStats(companyID string) (*CompanyStats, error) {
	stats := &CompanyStats{}

	err := r.db.Model(&models.Job{}).
		Where("company_id = ? AND status = ?", companyID, models.JobStatusOpen).
		Count(&stats.ActiveJobs).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Count(&stats.TotalApplications).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ? AND applications.status = ?", companyID, models.ApplicationStatusPending).
		Count(&stats.NewApplications).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
