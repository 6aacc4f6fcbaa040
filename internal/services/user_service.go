package services

import (
	"errors"
	"fmt"

	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserIDRequired = errors.New("user_id is required")
	ErrUserNotFound   = errors.New("user not found")
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpsertUserInput represents input for creating or updating a user
type UpsertUserInput struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// Upsert creates a user or refreshes the mutable fields of an existing one.
func (s *UserService) Upsert(input UpsertUserInput) (*models.User, error) {
	if input.UserID == "" {
		return nil, ErrUserIDRequired
	}

	user := &models.User{
		UserID: input.UserID,
		Email:  input.Email,
		Name:   input.Name,
		Role:   input.Role,
	}

	if err := s.userRepo.Upsert(user); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	// Re-read so the caller sees the stored row, not the insert attempt.
	return s.Get(input.UserID)
}

// Get returns a user by external id
func (s *UserService) Get(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByExternalID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// List returns users, most recent first
func (s *UserService) List(limit int) ([]models.User, error) {
	users, err := s.userRepo.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user and cascades per the ownership rules
func (s *UserService) Delete(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ensureUserExists verifies a referenced user before a dependent write.
func ensureUserExists(userRepo repository.UserRepository, userID string) error {
	if userID == "" {
		return ErrUserIDRequired
	}
	if _, err := userRepo.FindByExternalID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}
