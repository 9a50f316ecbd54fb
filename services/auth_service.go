package services

import (
	"errors"

	"github.com/samamo-gana/FitTracker/models"
	"github.com/samamo-gana/FitTracker/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Register creates a new account. Duplicate usernames and empty fields map to
// the closed error kinds; the unique index on username is the backstop for
// concurrent registrations.
func (s *AuthService) Register(username, password string) error {
	if username == "" || password == "" {
		return models.ErrInvalidInput
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return models.ErrAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{Username: username, Password: hashed}
	return s.db.Create(&user).Error
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, models.ErrBadCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, models.ErrBadCredentials
	}
	return &user, nil
}

func (s *AuthService) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
