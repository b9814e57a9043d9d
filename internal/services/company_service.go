package services

import (
	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
	"nexues_backend/internal/services/dto"
	"nexues_backend/pkg/apperrors"
)

type CompanyService interface {
	GetProfile(userID string) (*models.Company, error)
	UpdateProfile(userID string, req *dto.UpdateCompanyRequest) (*models.Company, error)
	ListJobs(userID string, query *dto.CompanyJobsQuery) (*dto.JobListResponse, error)
	ListJobApplications(userID, jobID string) ([]models.Application, error)
	UpdateApplicationStatus(userID, jobID, applicationID string, status models.ApplicationStatus) (*models.Application, error)
	GetStats(userID string) (*repositories.CompanyStats, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
	jobRepo     repositories.JobRepository
	appRepo     repositories.ApplicationRepository
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
) CompanyService {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
	}
}

// GetProfile возвращает профиль компании пользователя.
// Отсутствие профиля не ошибка: клиент получает nil и создает его.
func (s *CompanyServiceImpl) GetProfile(userID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// UpdateProfile создает или обновляет профиль компании
func (s *CompanyServiceImpl) UpdateProfile(userID string, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Description: req.Description,
		Industry:    req.Industry,
		Size:        req.Size,
		Website:     req.Website,
		Location:    req.Location,
		Logo:        req.Logo,
	}

	if err := s.companyRepo.Upsert(company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.companyRepo.FindByID(company.ID)
}

// ListJobs - вакансии компании с фильтром по статусу
func (s *CompanyServiceImpl) ListJobs(userID string, query *dto.CompanyJobsQuery) (*dto.JobListResponse, error) {
	company, err := s.requireCompany(userID)
	if err != nil {
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	jobs, total, err := s.jobRepo.FindByCompanyID(company.ID, query.Status, limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:       jobs,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

// ListJobApplications - отклики на вакансию после проверки владения
func (s *CompanyServiceImpl) ListJobApplications(userID, jobID string) ([]models.Application, error) {
	if _, err := s.ownedJob(userID, jobID); err != nil {
		return nil, err
	}

	applications, err := s.appRepo.FindByJobID(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// UpdateApplicationStatus меняет статус отклика на вакансию компании
func (s *CompanyServiceImpl) UpdateApplicationStatus(userID, jobID, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidAppStatus
	}

	if _, err := s.ownedJob(userID, jobID); err != nil {
		return nil, err
	}

	if _, err := s.appRepo.FindByIDAndJob(applicationID, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.appRepo.UpdateStatus(applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.appRepo.FindByID(applicationID)
}

// GetStats - сводка для дашборда компании
func (s *CompanyServiceImpl) GetStats(userID string) (*repositories.CompanyStats, error) {
	company, err := s.requireCompany(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.companyRepo.GetStats(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *CompanyServiceImpl) requireCompany(userID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) ownedJob(userID, jobID string) (*models.Job, error) {
	company, err := s.requireCompany(userID)
	if err != nil {
		return nil, err
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
