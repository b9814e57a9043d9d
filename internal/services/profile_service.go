package services

import (
	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
	"nexues_backend/internal/services/dto"
	"nexues_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ProfileService interface {
	Get(userID string) (*models.Profile, error)
	Update(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo}
}

func (s *ProfileServiceImpl) Get(userID string) (*models.Profile, error) {
	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Update создает или обновляет анкету соискателя
func (s *ProfileServiceImpl) Update(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:      userID,
		FullName:    req.FullName,
		Bio:         req.Bio,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Resume:      req.Resume,
		Skills:      datatypes.NewJSONSlice(req.Skills),
		Experience:  req.Experience,
		Education:   req.Education,
		LinkedIn:    req.LinkedIn,
		GitHub:      req.GitHub,
		Portfolio:   req.Portfolio,
	}

	if err := s.userRepo.UpsertProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
