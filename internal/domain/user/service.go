// internal/domain/user/service.go
package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/saree-storefront/internal/config"
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
	"github.com/your-org/saree-storefront/internal/pkg/auth"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service handles user accounts for the auth collaborator
type Service struct {
	db        *gorm.DB
	passwords *auth.PasswordManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:        db,
		passwords: auth.NewPasswordManager(cfg),
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// Register creates a new account
func (s *Service) Register(req *RegisterRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apperrors.NewValidation("email", "must not be empty")
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var existing User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewCollaborator("user lookup", err)
	}

	account := User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, apperrors.NewCollaborator("user create", err)
	}

	return &account, nil
}

// Authenticate verifies credentials and returns the account
func (s *Service) Authenticate(email, password string) (*User, error) {
	var account User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.NewCollaborator("user lookup", err)
	}

	if err := s.passwords.VerifyPassword(password, account.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &account, nil
}

// Get returns one account by ID
func (s *Service) Get(id string) (*User, error) {
	var account User
	if err := s.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, apperrors.NewCollaborator("user get", err)
	}
	return &account, nil
}
