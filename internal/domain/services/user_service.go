package services

import (
	"errors"

	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceUserService defines the user account service interface
type InterfaceUserService interface {
	GetAllUsers(page int, pageSize int) ([]models.User, int64, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
	EnsureDefaultOperator() error
}

// UserService manages application accounts.
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service.
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllUsers lists accounts with pagination
func (s *UserService) GetAllUsers(page int, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// 2 GetUserByID fetches one account
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("pengguna tidak ditemukan")
		}
		return nil, err
	}
	return &user, nil
}

// 3 CreateUser creates a new account
func (s *UserService) CreateUser(user *models.User) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("username sudah digunakan")
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}

	return s.DB.Create(user).Error
}

// 4 UpdateUser applies partial updates to an account
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if username, ok := updates["username"].(string); ok && username != user.Username {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("username = ? AND id != ?", username, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("username sudah digunakan")
		}
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUserByID(id)
}

// 5 DeleteUser removes an account
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(user).Error
}

// 6 EnsureDefaultOperator seeds the initial operator account on first boot
func (s *UserService) EnsureDefaultOperator() error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleOperator).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	operator := &models.User{
		Username: "operator",
		Password: s.Config.DefaultOperatorPassword,
		Role:     models.RoleOperator,
	}
	return s.DB.Create(operator).Error
}
