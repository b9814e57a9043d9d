package repositories

import (
	"errors"

	"nexues_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrProfileNotFound   = errors.New("profile not found")
)

type UserRepository interface {
	// User operations
	FindByID(id string) (*models.User, error)
	FindByIDWithRelations(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateActive(userID string, isActive bool) error
	UpdateRole(userID string, role models.UserRole) error
	Delete(userID string) error
	DeleteCascade(userID string) error

	// Profile operations
	FindProfileByUserID(userID string) (*models.Profile, error)
	UpsertProfile(profile *models.Profile) error

	// Admin operations
	FindAll(limit, offset int) ([]models.User, int64, error)
	FindRecent(limit int) ([]models.User, error)
	CountByRole(role models.UserRole) (int64, error)
	CountAll() (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Preload("Company").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDWithRelations загружает пользователя вместе с анкетой,
// компанией и откликами для страницы аккаунта
func (r *UserRepositoryImpl) FindByIDWithRelations(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Preload("Company").
		Preload("Applications").Preload("Applications.Job").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Preload("Company").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	// Дубликаты отсекаем заранее, чтобы вернуть понятную ошибку,
	// а не сырой constraint от базы
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateActive(userID string, isActive bool) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("is_active", isActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateRole(userID string, role models.UserRole) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	result := r.db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteCascade удаляет учетную запись вместе со всем, что ей
// принадлежит: анкетой, откликами, компанией и ее вакансиями.
// Каскада на уровне схемы нет, поэтому чистим в транзакции.
func (r *UserRepositoryImpl) DeleteCascade(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var company models.Company
		err := tx.First(&company, "user_id = ?", userID).Error
		switch {
		case err == nil:
			if err := tx.Exec(
				"DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE company_id = ?)",
				company.ID).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Job{}, "company_id = ?", company.ID).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Company{}, "id = ?", company.ID).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := tx.Delete(&models.Application{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Profile{}, "user_id = ?", userID).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, "id = ?", userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

// Profile operations

func (r *UserRepositoryImpl) FindProfileByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile создает профиль при первом обращении и обновляет при последующих
func (r *UserRepositoryImpl) UpsertProfile(profile *models.Profile) error {
	var existing models.Profile
	err := r.db.First(&existing, "user_id = ?", profile.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(profile).Error
		}
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

// Admin operations

func (r *UserRepositoryImpl) FindAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Profile").Preload("Company").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) FindRecent(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
