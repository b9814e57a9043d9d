package services

import (
	"time"

	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
	"nexues_backend/internal/services/dto"
	"nexues_backend/pkg/apperrors"
)

type AdminService interface {
	GetDashboardStats() (*dto.DashboardStats, error)
	GetAnalytics() (*dto.AnalyticsResponse, error)
	ListUsers(query *dto.ListQuery) (*dto.UserListResponse, error)
	ListApplications(query *dto.ListQuery) (*dto.ApplicationListResponse, error)
	UpdateUserStatus(userID string, isActive bool) (*models.User, error)
	UpdateUserRole(userID string, role models.UserRole) (*models.User, error)
	DeleteUser(userID string) error
	ListJobs() ([]models.Job, error)
	DeleteJob(jobID string) error
}

const (
	recentItemsLimit = 5
	adminJobsLimit   = 100
	analyticsDays    = 7
	activityLimit    = 10
)

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	appRepo  repositories.ApplicationRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		appRepo:  appRepo,
	}
}

// GetDashboardStats собирает счетчики и последние записи для дашборда
func (s *AdminServiceImpl) GetDashboardStats() (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.CountByRole(models.UserRoleUser); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalCompanies, err = s.userRepo.CountByRole(models.UserRoleCompany); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalJobs, err = s.jobRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalApplications, err = s.appRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if stats.RecentUsers, err = s.userRepo.FindRecent(recentItemsLimit); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.RecentJobs, err = s.jobRepo.FindRecent(recentItemsLimit); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.RecentApplications, err = s.appRepo.FindRecent(recentItemsLimit); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return stats, nil
}

// GetAnalytics - отклики по дням за последнюю неделю, вакансии по
// категориям и лента последних событий
func (s *AdminServiceImpl) GetAnalytics() (*dto.AnalyticsResponse, error) {
	now := time.Now()
	byDay := make([]dto.DayCount, 0, analyticsDays)
	for i := analyticsDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		count, err := s.appRepo.CountCreatedBetween(start, start.AddDate(0, 0, 1))
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		byDay = append(byDay, dto.DayCount{Date: start.Format("2006-01-02"), Count: count})
	}

	jobStats, err := s.jobRepo.GetStats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recent, err := s.appRepo.FindRecent(activityLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activity := make([]dto.ActivityEntry, 0, len(recent))
	for _, application := range recent {
		activity = append(activity, dto.ActivityEntry{
			ID:    application.ID,
			Event: activityEvent(&application),
			Date:  application.CreatedAt,
		})
	}

	return &dto.AnalyticsResponse{
		ApplicationsByDay: byDay,
		JobsByCategory:    jobStats.CategoryStats,
		RecentActivity:    activity,
	}, nil
}

func activityEvent(application *models.Application) string {
	who := "Someone"
	if application.User != nil {
		if application.User.Name != "" {
			who = application.User.Name
		} else {
			who = application.User.Email
		}
	}
	event := who + " applied to a job"
	if application.Job != nil {
		event = who + " applied to " + application.Job.Title
		if application.Job.Company != nil {
			event += " at " + application.Job.Company.CompanyName
		}
	}
	return event
}

func (s *AdminServiceImpl) ListUsers(query *dto.ListQuery) (*dto.UserListResponse, error) {
	page, limit := normalizePage(query.Page, query.Limit)

	users, total, err := s.userRepo.FindAll(limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserListResponse{
		Users:      users,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

func (s *AdminServiceImpl) ListApplications(query *dto.ListQuery) (*dto.ApplicationListResponse, error) {
	page, limit := normalizePage(query.Page, query.Limit)

	applications, total, err := s.appRepo.FindAll(limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplicationListResponse{
		Applications: applications,
		Pagination:   dto.NewPagination(total, page, limit),
	}, nil
}

// UpdateUserStatus блокирует или разблокирует учетную запись
func (s *AdminServiceImpl) UpdateUserStatus(userID string, isActive bool) (*models.User, error) {
	if err := s.userRepo.UpdateActive(userID, isActive); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.userRepo.FindByID(userID)
}

func (s *AdminServiceImpl) UpdateUserRole(userID string, role models.UserRole) (*models.User, error) {
	if !models.ValidUserRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.userRepo.FindByID(userID)
}

// DeleteUser удаляет учетную запись вместе с анкетой, откликами
// и компанией с ее вакансиями
func (s *AdminServiceImpl) DeleteUser(userID string) error {
	if err := s.userRepo.DeleteCascade(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ListJobs - вакансии вместе с откликами для админки
func (s *AdminServiceImpl) ListJobs() ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAllWithApplications(adminJobsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// DeleteJob удаляет любую вакансию без проверки владения
func (s *AdminServiceImpl) DeleteJob(jobID string) error {
	if err := s.jobRepo.Delete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
