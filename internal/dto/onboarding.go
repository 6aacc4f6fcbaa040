package dto

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
)

// CreateOnboardingRequest is the write payload for POST /api/onboarding
type CreateOnboardingRequest struct {
	UserID             string     `json:"user_id" binding:"required"`
	Role               string     `json:"role"`
	StartDate          *time.Time `json:"start_date"`
	ManagerID          string     `json:"manager_id"`
	Status             string     `json:"status" binding:"omitempty,oneof=active completed on_hold"`
	ProgressPercentage int        `json:"progress_percentage" binding:"min=0,max=100"`
}

// UpdateOnboardingRequest is the write payload for PATCH /api/onboarding/:id.
// Absent fields are left untouched.
type UpdateOnboardingRequest struct {
	Role               *string    `json:"role"`
	StartDate          *time.Time `json:"start_date"`
	ManagerID          *string    `json:"manager_id"`
	Status             *string    `json:"status" binding:"omitempty,oneof=active completed on_hold"`
	ProgressPercentage *int       `json:"progress_percentage" binding:"omitempty,min=0,max=100"`
}

// OnboardingDTO represents an onboarding record in API responses
type OnboardingDTO struct {
	ID                 uint64                  `json:"id"`
	UserID             string                  `json:"user_id"`
	Role               string                  `json:"role,omitempty"`
	StartDate          *time.Time              `json:"start_date"`
	ManagerID          string                  `json:"manager_id,omitempty"`
	Status             models.OnboardingStatus `json:"status"`
	ProgressPercentage int                     `json:"progress_percentage"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// ToOnboardingDTO converts an Onboarding model to OnboardingDTO
func ToOnboardingDTO(onboarding models.Onboarding) OnboardingDTO {
	return OnboardingDTO{
		ID:                 onboarding.ID,
		UserID:             onboarding.UserID,
		Role:               onboarding.Role,
		StartDate:          onboarding.StartDate,
		ManagerID:          onboarding.ManagerID,
		Status:             onboarding.Status,
		ProgressPercentage: onboarding.ProgressPercentage,
		CreatedAt:          onboarding.CreatedAt,
		UpdatedAt:          onboarding.UpdatedAt,
	}
}

// ToOnboardingDTOs converts a slice of Onboarding models
func ToOnboardingDTOs(records []models.Onboarding) []OnboardingDTO {
	dtos := make([]OnboardingDTO, len(records))
	for i, r := range records {
		dtos[i] = ToOnboardingDTO(r)
	}
	return dtos
}
