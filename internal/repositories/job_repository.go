package repositories

import (
	"errors"
	"strings"

	"nexues_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - параметры поиска по открытым вакансиям
type JobFilter struct {
	Search          string
	Location        string
	Category        string
	ExperienceLevel string
	EmploymentType  string
	Remote          *bool
	Page            int
	Limit           int
}

// CategoryCount - элемент группировки для статистики
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// JobStats - агрегированная статистика по вакансиям
type JobStats struct {
	TotalJobs     int64           `json:"totalJobs"`
	CategoryStats []CategoryCount `json:"categoryStats"`
	LocationStats []LocationCount `json:"locationStats"`
}

type JobRepository interface {
	FindByID(id string) (*models.Job, error)
	FindByIDAndCompany(id, companyID string) (*models.Job, error)
	FindWithFilter(filter JobFilter) ([]models.Job, int64, error)
	FindByCompanyID(companyID string, status models.JobStatus, limit, offset int) ([]models.Job, int64, error)
	FindSimilar(job *models.Job, limit int) ([]models.Job, error)
	FindRecommended(userID string, skills, categories []string, limit int) ([]models.Job, error)
	FindRecent(limit int) ([]models.Job, error)
	FindAllWithApplications(limit int) ([]models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	UpdateStatus(jobID string, status models.JobStatus) error
	Delete(jobID string) error
	GetStats() (*JobStats, error)
	CountAll() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Company").Preload("Company.User").Preload("Applications").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindByIDAndCompany находит вакансию только если она принадлежит компании.
// Используется для проверки владения перед изменением.
func (r *JobRepositoryImpl) FindByIDAndCompany(id, companyID string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindWithFilter возвращает открытые вакансии по фильтру с пагинацией
func (r *JobRepositoryImpl) FindWithFilter(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("status = ?", models.JobStatusOpen)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.EmploymentType != "" {
		query = query.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.Remote != nil {
		query = query.Where("remote = ?", *filter.Remote)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.Preload("Company").Preload("Company.User").
		Order("created_at DESC").
		Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	if err := r.fillApplicationCounts(jobs); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) FindByCompanyID(companyID string, status models.JobStatus, limit, offset int) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("company_id = ?", companyID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.Preload("Applications").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// FindSimilar подбирает открытые вакансии той же категории или того же
// уровня, исключая саму вакансию
func (r *JobRepositoryImpl) FindSimilar(job *models.Job, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Company").Preload("Company.User").
		Where("(category = ? OR experience_level = ?) AND id <> ? AND status = ?",
			job.Category, job.ExperienceLevel, job.ID, models.JobStatusOpen).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	if err := r.fillApplicationCounts(jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindRecommended подбирает вакансии по навыкам профиля и категориям
// прошлых откликов, исключая вакансии с уже поданным откликом
func (r *JobRepositoryImpl) FindRecommended(userID string, skills, categories []string, limit int) ([]models.Job, error) {
	if len(skills) == 0 && len(categories) == 0 {
		return []models.Job{}, nil
	}

	query := r.db.Where(
		"NOT EXISTS (SELECT 1 FROM applications WHERE applications.job_id = jobs.id AND applications.user_id = ?)",
		userID)

	match := r.db.Session(&gorm.Session{NewDB: true})
	matched := false
	for _, skill := range skills {
		match = match.Or("LOWER(description) LIKE ?", "%"+strings.ToLower(skill)+"%")
		matched = true
	}
	if len(categories) > 0 {
		match = match.Or("category IN ?", categories)
		matched = true
	}
	if matched {
		query = query.Where(match)
	}

	var jobs []models.Job
	err := query.Preload("Company").
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindRecent(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Company").Order("created_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}

// FindAllWithApplications - срез всех вакансий с откликами для админки
func (r *JobRepositoryImpl) FindAllWithApplications(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Company").Preload("Applications").Preload("Applications.User").
		Order("created_at DESC").Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(jobID string) error {
	// Сначала чистим отклики: на уровне схемы каскада нет
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Application{}, "job_id = ?", jobID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Job{}, "id = ?", jobID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) GetStats() (*JobStats, error) {
	stats := &JobStats{}

	if err := r.db.Model(&models.Job{}).Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&models.Job{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&stats.CategoryStats).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Job{}).
		Select("location, COUNT(*) as count").
		Group("location").
		Scan(&stats.LocationStats).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

// fillApplicationCounts проставляет количество откликов одним
// сгруппированным запросом вместо N+1
func (r *JobRepositoryImpl) fillApplicationCounts(jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}

	var rows []struct {
		JobID string
		Count int64
	}
	err := r.db.Model(&models.Application{}).
		Select("job_id, COUNT(*) as count").
		Where("job_id IN ?", ids).
		Group("job_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.JobID] = row.Count
	}
	for i := range jobs {
		jobs[i].ApplicationsCount = counts[jobs[i].ID]
	}
	return nil
}
