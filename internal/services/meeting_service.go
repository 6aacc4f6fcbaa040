package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMeetingIDRequired       = errors.New("meeting_id is required")
	ErrMeetingNotFound         = errors.New("meeting not found")
	ErrMeetingExists           = errors.New("meeting already exists")
	ErrActionItemTitleRequired = errors.New("every action item needs a title")
)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo repository.MeetingRepository
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(meetingRepo repository.MeetingRepository) *MeetingService {
	return &MeetingService{meetingRepo: meetingRepo}
}

// CreateMeetingInput represents input for recording a meeting
type CreateMeetingInput struct {
	MeetingID    string
	Transcript   string
	Summary      string
	ActionItems  []models.ActionItem
	Participants []string
	OccurredAt   *time.Time
}

// UpdateMeetingInput represents a partial meeting update; nil fields are left
// untouched
type UpdateMeetingInput struct {
	Transcript   *string
	Summary      *string
	ActionItems  *[]models.ActionItem
	Participants *[]string
	OccurredAt   *time.Time
}

// Create validates and persists a meeting record.
func (s *MeetingService) Create(input CreateMeetingInput) (*models.Meeting, error) {
	if input.MeetingID == "" {
		return nil, ErrMeetingIDRequired
	}
	if err := validateActionItems(input.ActionItems); err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		MeetingID:    input.MeetingID,
		Transcript:   input.Transcript,
		Summary:      input.Summary,
		ActionItems:  input.ActionItems,
		Participants: input.Participants,
		OccurredAt:   input.OccurredAt,
	}

	if err := s.meetingRepo.Create(meeting); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMeetingExists
		}
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// Update applies a partial update to a meeting.
func (s *MeetingService) Update(meetingID string, input UpdateMeetingInput) (*models.Meeting, error) {
	meeting, err := s.Get(meetingID)
	if err != nil {
		return nil, err
	}

	if input.Transcript != nil {
		meeting.Transcript = *input.Transcript
	}
	if input.Summary != nil {
		meeting.Summary = *input.Summary
	}
	if input.ActionItems != nil {
		if err := validateActionItems(*input.ActionItems); err != nil {
			return nil, err
		}
		meeting.ActionItems = *input.ActionItems
	}
	if input.Participants != nil {
		meeting.Participants = *input.Participants
	}
	if input.OccurredAt != nil {
		meeting.OccurredAt = input.OccurredAt
	}

	if err := s.meetingRepo.Update(meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return meeting, nil
}

// Get returns a meeting by external id
func (s *MeetingService) Get(meetingID string) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.FindByExternalID(meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	return meeting, nil
}

// List returns meetings, most recent first
func (s *MeetingService) List(limit int) ([]models.Meeting, error) {
	meetings, err := s.meetingRepo.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

func validateActionItems(items []models.ActionItem) error {
	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			return ErrActionItemTitleRequired
		}
	}
	return nil
}
