package models

import "time"

type OnboardingStatus string

const (
	OnboardingStatusActive    OnboardingStatus = "active"
	OnboardingStatusCompleted OnboardingStatus = "completed"
	OnboardingStatusOnHold    OnboardingStatus = "on_hold"
)

// IsValid reports whether the status is one of the enumerated values.
func (s OnboardingStatus) IsValid() bool {
	switch s {
	case OnboardingStatusActive, OnboardingStatusCompleted, OnboardingStatusOnHold:
		return true
	}
	return false
}

// Onboarding tracks a user's ramp-up. ManagerID is a soft reference to a user
// external id and is deliberately not enforced as a foreign key.
type Onboarding struct {
	ID                 uint64           `gorm:"primarykey" json:"id"`
	UserID             string           `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Role               string           `gorm:"type:varchar(100)" json:"role,omitempty"`
	StartDate          *time.Time       `gorm:"type:date" json:"start_date"`
	ManagerID          string           `gorm:"type:varchar(64)" json:"manager_id,omitempty"`
	Status             OnboardingStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ProgressPercentage int              `gorm:"not null;default:0;check:progress_percentage >= 0 AND progress_percentage <= 100" json:"progress_percentage"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
