package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidOnboardingStatus = errors.New("invalid onboarding status")
	ErrProgressOutOfRange      = errors.New("progress_percentage must be between 0 and 100")
	ErrOnboardingNotFound      = errors.New("onboarding record not found")
)

// OnboardingService handles onboarding business logic
type OnboardingService struct {
	onboardingRepo repository.OnboardingRepository
	userRepo       repository.UserRepository
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(onboardingRepo repository.OnboardingRepository, userRepo repository.UserRepository) *OnboardingService {
	return &OnboardingService{
		onboardingRepo: onboardingRepo,
		userRepo:       userRepo,
	}
}

// CreateOnboardingInput represents input for starting an onboarding track
type CreateOnboardingInput struct {
	UserID             string
	Role               string
	StartDate          *time.Time
	ManagerID          string
	Status             models.OnboardingStatus
	ProgressPercentage int
}

// UpdateOnboardingInput represents a partial onboarding update; nil fields
// are left untouched
type UpdateOnboardingInput struct {
	Role               *string
	StartDate          *time.Time
	ManagerID          *string
	Status             *models.OnboardingStatus
	ProgressPercentage *int
}

// Create validates and persists an onboarding record.
func (s *OnboardingService) Create(input CreateOnboardingInput) (*models.Onboarding, error) {
	if input.Status == "" {
		input.Status = models.OnboardingStatusActive
	}
	if !input.Status.IsValid() {
		return nil, ErrInvalidOnboardingStatus
	}
	if input.ProgressPercentage < 0 || input.ProgressPercentage > 100 {
		return nil, ErrProgressOutOfRange
	}

	if err := ensureUserExists(s.userRepo, input.UserID); err != nil {
		return nil, err
	}

	onboarding := &models.Onboarding{
		UserID:             input.UserID,
		Role:               input.Role,
		StartDate:          input.StartDate,
		ManagerID:          input.ManagerID,
		Status:             input.Status,
		ProgressPercentage: input.ProgressPercentage,
	}

	if err := s.onboardingRepo.Create(onboarding); err != nil {
		return nil, fmt.Errorf("failed to create onboarding record: %w", err)
	}
	return onboarding, nil
}

// Update applies a partial update to an onboarding record.
func (s *OnboardingService) Update(id uint64, input UpdateOnboardingInput) (*models.Onboarding, error) {
	onboarding, err := s.onboardingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOnboardingNotFound
		}
		return nil, fmt.Errorf("failed to find onboarding record: %w", err)
	}

	if input.Role != nil {
		onboarding.Role = *input.Role
	}
	if input.StartDate != nil {
		onboarding.StartDate = input.StartDate
	}
	if input.ManagerID != nil {
		onboarding.ManagerID = *input.ManagerID
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, ErrInvalidOnboardingStatus
		}
		onboarding.Status = *input.Status
	}
	if input.ProgressPercentage != nil {
		if *input.ProgressPercentage < 0 || *input.ProgressPercentage > 100 {
			return nil, ErrProgressOutOfRange
		}
		onboarding.ProgressPercentage = *input.ProgressPercentage
	}

	if err := s.onboardingRepo.Update(onboarding); err != nil {
		return nil, fmt.Errorf("failed to update onboarding record: %w", err)
	}
	return onboarding, nil
}

// ListForUser returns a user's onboarding records, most recent first
func (s *OnboardingService) ListForUser(userID string) ([]models.Onboarding, error) {
	records, err := s.onboardingRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding records: %w", err)
	}
	return records, nil
}
