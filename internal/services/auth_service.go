package services

import (
	"nexues_backend/internal/auth"
	"nexues_backend/internal/models"
	"nexues_backend/internal/repositories"
	"nexues_backend/internal/services/dto"
	"nexues_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, *dto.TokenPair, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, *dto.TokenPair, error)
	Refresh(refreshToken string) (*dto.AuthResponse, *dto.TokenPair, error)
	Verify(userID string) (*models.User, error)
	Profile(userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	tokenManager *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokenManager *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

// Register - регистрация нового пользователя.
// Вместе с учетной записью создается пустой профиль соискателя.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, *dto.TokenPair, error) {
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		return nil, nil, apperrors.ErrWeakPassword
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}
	if !models.ValidUserRole(role) {
		return nil, nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:   user.ID,
		FullName: req.Name,
	}
	if err := s.userRepo.UpsertProfile(profile); err != nil {
		// Учетная запись без профиля бесполезна, откатываем
		s.userRepo.Delete(user.ID)
		return nil, nil, apperrors.InternalError(err)
	}
	user.Profile = profile

	return s.issueTokens(user)
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, *dto.TokenPair, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, apperrors.InternalError(err)
	}

	// Деактивированная учетная запись неотличима от неверного пароля
	if !user.IsActive {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh проверяет refresh token и выпускает новую пару токенов.
// Старый токен остается валидным до истечения срока: ротация без
// списка отозванных.
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.AuthResponse, *dto.TokenPair, error) {
	claims, err := s.tokenManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, apperrors.NewUnauthorizedError("Invalid or expired refresh token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, apperrors.NewUnauthorizedError("Invalid refresh token - user not found")
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, nil, apperrors.ErrUserInactive
	}

	return s.issueTokens(user)
}

// Verify возвращает пользователя по id из валидного access токена
func (s *AuthServiceImpl) Verify(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	return user, nil
}

// Profile возвращает пользователя вместе с анкетой, компанией и откликами
func (s *AuthServiceImpl) Profile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithRelations(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	return user, nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, *dto.TokenPair, error) {
	accessToken, err := s.tokenManager.GenerateAccessToken(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	refreshToken, err := s.tokenManager.GenerateRefreshToken(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	response := &dto.AuthResponse{
		User:  user,
		Token: accessToken,
	}
	pair := &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	return response, pair, nil
}
