package services

import (
	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
	"nexues_backend/internal/services/dto"
	"nexues_backend/pkg/apperrors"
)

type ApplicationService interface {
	Create(userID string, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(userID string, role models.UserRole, id string) (*models.Application, error)
	ListByUser(userID string) ([]models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error)
	Withdraw(userID, id string) error
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

// Create подает отклик на вакансию. Повторный отклик на ту же
// вакансию отклоняется.
func (s *ApplicationServiceImpl) Create(userID string, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if _, err := s.jobRepo.FindByID(req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		UserID:      userID,
		JobID:       req.JobID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return s.appRepo.FindByID(application.ID)
}

// GetByID - отклик видят только его владелец и администратор
func (s *ApplicationServiceImpl) GetByID(userID string, role models.UserRole, id string) (*models.Application, error) {
	application, err := s.appRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if role != models.UserRoleAdmin && application.UserID != userID {
		return nil, apperrors.NewForbiddenError("Unauthorized access")
	}
	return application, nil
}

func (s *ApplicationServiceImpl) ListByUser(userID string) ([]models.Application, error) {
	applications, err := s.appRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// UpdateStatus меняет статус отклика (admin-операция)
func (s *ApplicationServiceImpl) UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidAppStatus
	}

	if err := s.appRepo.UpdateStatus(id, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.appRepo.FindByID(id)
}

// Withdraw отзывает собственный отклик
func (s *ApplicationServiceImpl) Withdraw(userID, id string) error {
	application, err := s.appRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	if application.UserID != userID {
		return apperrors.NewForbiddenError("Unauthorized access")
	}

	if err := s.appRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
