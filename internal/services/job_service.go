package services

import (
	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
	"nexues_backend/internal/services/dto"
	"nexues_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type JobService interface {
	List(query *dto.JobListQuery) (*dto.JobListResponse, error)
	GetByID(id string) (*models.Job, error)
	GetSimilar(id string) ([]models.Job, error)
	GetStats() (*repositories.JobStats, error)
	GetRecommendations(userID string) ([]models.Job, error)
	Create(userID string, req *dto.CreateJobRequest) (*models.Job, error)
	Update(userID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateStatus(userID, jobID string, status models.JobStatus) (*models.Job, error)
	Delete(userID, jobID string) error
}

const (
	similarJobsLimit     = 5
	recommendationsLimit = 6
)

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
	userRepo    repositories.UserRepository
	appRepo     repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		appRepo:     appRepo,
	}
}

// List - публичный поиск по открытым вакансиям
func (s *JobServiceImpl) List(query *dto.JobListQuery) (*dto.JobListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	filter := repositories.JobFilter{
		Search:          query.Search,
		Location:        query.Location,
		Category:        query.Category,
		ExperienceLevel: query.ExperienceLevel,
		EmploymentType:  query.EmploymentType,
		Remote:          query.Remote,
		Page:            page,
		Limit:           limit,
	}

	jobs, total, err := s.jobRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:       jobs,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

func (s *JobServiceImpl) GetByID(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// GetSimilar - до 5 открытых вакансий той же категории или уровня
func (s *JobServiceImpl) GetSimilar(id string) ([]models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	similar, err := s.jobRepo.FindSimilar(job, similarJobsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return similar, nil
}

func (s *JobServiceImpl) GetStats() (*repositories.JobStats, error) {
	stats, err := s.jobRepo.GetStats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

// GetRecommendations подбирает вакансии по навыкам профиля и
// категориям прошлых откликов пользователя
func (s *JobServiceImpl) GetRecommendations(userID string) ([]models.Job, error) {
	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("User profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.appRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	seen := make(map[string]bool)
	var categories []string
	for _, app := range applications {
		if app.Job != nil && !seen[app.Job.Category] {
			seen[app.Job.Category] = true
			categories = append(categories, app.Job.Category)
		}
	}

	jobs, err := s.jobRepo.FindRecommended(userID, profile.Skills, categories, recommendationsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// Create публикует вакансию от имени компании пользователя
func (s *JobServiceImpl) Create(userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	status := req.Status
	if status == "" {
		status = models.JobStatusOpen
	}

	job := &models.Job{
		CompanyID:       company.ID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Category:        req.Category,
		ExperienceLevel: req.ExperienceLevel,
		EmploymentType:  req.EmploymentType,
		Salary:          req.Salary,
		Remote:          req.Remote,
		Status:          status,
		Requirements:    datatypes.NewJSONSlice(req.Requirements),
		Benefits:        datatypes.NewJSONSlice(req.Benefits),
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Company = company
	return job, nil
}

// Update изменяет вакансию после проверки владения
func (s *JobServiceImpl) Update(userID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.ownedJob(userID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.Remote != nil {
		job.Remote = *req.Remote
	}
	if req.Requirements != nil {
		job.Requirements = datatypes.NewJSONSlice(req.Requirements)
	}
	if req.Benefits != nil {
		job.Benefits = datatypes.NewJSONSlice(req.Benefits)
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(job.ID)
}

// UpdateStatus открывает или закрывает вакансию
func (s *JobServiceImpl) UpdateStatus(userID, jobID string, status models.JobStatus) (*models.Job, error) {
	if !models.ValidJobStatus(status) {
		return nil, apperrors.ErrInvalidJobStatus
	}

	job, err := s.ownedJob(userID, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateStatus(job.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	job.Status = status
	return job, nil
}

// Delete удаляет вакансию вместе с откликами
func (s *JobServiceImpl) Delete(userID, jobID string) error {
	job, err := s.ownedJob(userID, jobID)
	if err != nil {
		return err
	}

	if err := s.jobRepo.Delete(job.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ownedJob находит вакансию, принадлежащую компании пользователя.
// Чужая вакансия выглядит как несуществующая.
func (s *JobServiceImpl) ownedJob(userID, jobID string) (*models.Job, error) {
	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByIDAndCompany(jobID, company.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}
