package dto

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
)

// SubmitStandupRequest is the write payload for POST/PUT /api/standups.
// Date defaults to today when omitted.
type SubmitStandupRequest struct {
	UserID    string   `json:"user_id" binding:"required"`
	Date      string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Yesterday []string `json:"yesterday"`
	Today     []string `json:"today"`
	Blockers  []string `json:"blockers"`
	Summary   string   `json:"summary"`
}

// StandupDTO represents a standup in API responses
type StandupDTO struct {
	ID        uint64    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Yesterday []string  `json:"yesterday"`
	Today     []string  `json:"today"`
	Blockers  []string  `json:"blockers"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToStandupDTO converts a Standup model to StandupDTO
func ToStandupDTO(standup models.Standup) StandupDTO {
	return StandupDTO{
		ID:        standup.ID,
		UserID:    standup.UserID,
		Date:      standup.Date.Format("2006-01-02"),
		Yesterday: standup.Yesterday,
		Today:     standup.Today,
		Blockers:  standup.Blockers,
		Summary:   standup.Summary,
		CreatedAt: standup.CreatedAt,
	}
}
