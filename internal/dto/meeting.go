package dto

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
)

// ActionItemDTO is the validated shape of a meeting action item
type ActionItemDTO struct {
	Title    string `json:"title" binding:"required"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// CreateMeetingRequest is the write payload for POST /api/meetings
type CreateMeetingRequest struct {
	MeetingID    string          `json:"meeting_id" binding:"required"`
	Transcript   string          `json:"transcript"`
	Summary      string          `json:"summary"`
	ActionItems  []ActionItemDTO `json:"action_items" binding:"omitempty,dive"`
	Participants []string        `json:"participants"`
	OccurredAt   *time.Time      `json:"occurred_at"`
}

// UpdateMeetingRequest is the write payload for PATCH /api/meetings/:meeting_id.
// Absent fields are left untouched.
type UpdateMeetingRequest struct {
	Transcript   *string          `json:"transcript"`
	Summary      *string          `json:"summary"`
	ActionItems  *[]ActionItemDTO `json:"action_items" binding:"omitempty,dive"`
	Participants *[]string        `json:"participants"`
	OccurredAt   *time.Time       `json:"occurred_at"`
}

// MeetingDTO represents a meeting in API responses
type MeetingDTO struct {
	MeetingID    string              `json:"meeting_id"`
	Transcript   string              `json:"transcript,omitempty"`
	Summary      string              `json:"summary,omitempty"`
	ActionItems  []models.ActionItem `json:"action_items"`
	Participants []string            `json:"participants"`
	OccurredAt   *time.Time          `json:"occurred_at"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToActionItems converts request action items to the model shape
func ToActionItems(items []ActionItemDTO) []models.ActionItem {
	converted := make([]models.ActionItem, len(items))
	for i, item := range items {
		converted[i] = models.ActionItem{
			Title:    item.Title,
			Assignee: item.Assignee,
			DueDate:  item.DueDate,
		}
	}
	return converted
}

// ToMeetingDTO converts a Meeting model to MeetingDTO
func ToMeetingDTO(meeting models.Meeting) MeetingDTO {
	return MeetingDTO{
		MeetingID:    meeting.MeetingID,
		Transcript:   meeting.Transcript,
		Summary:      meeting.Summary,
		ActionItems:  meeting.ActionItems,
		Participants: meeting.Participants,
		OccurredAt:   meeting.OccurredAt,
		CreatedAt:    meeting.CreatedAt,
		UpdatedAt:    meeting.UpdatedAt,
	}
}

// ToMeetingDTOs converts a slice of Meeting models
func ToMeetingDTOs(meetings []models.Meeting) []MeetingDTO {
	dtos := make([]MeetingDTO, len(meetings))
	for i, m := range meetings {
		dtos[i] = ToMeetingDTO(m)
	}
	return dtos
}
