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
	ErrInvalidStandupDate = errors.New("standup date must be YYYY-MM-DD")
	ErrStandupExists      = errors.New("standup already exists for this user and date")
)

// standupDateLayout is the wire format for standup dates.
const standupDateLayout = "2006-01-02"

// StandupService handles standup business logic
type StandupService struct {
	standupRepo repository.StandupRepository
	userRepo    repository.UserRepository
}

// NewStandupService creates a new StandupService
func NewStandupService(standupRepo repository.StandupRepository, userRepo repository.UserRepository) *StandupService {
	return &StandupService{
		standupRepo: standupRepo,
		userRepo:    userRepo,
	}
}

// SubmitStandupInput represents a standup submission. Date defaults to today
// when empty.
type SubmitStandupInput struct {
	UserID    string
	Date      string
	Yesterday []string
	Today     []string
	Blockers  []string
	Summary   string
}

// Upsert writes a standup, replacing the item lists and summary when a row
// for the same user and day already exists.
func (s *StandupService) Upsert(input SubmitStandupInput) (*models.Standup, error) {
	standup, err := s.build(input)
	if err != nil {
		return nil, err
	}

	if err := s.standupRepo.Upsert(standup); err != nil {
		return nil, fmt.Errorf("failed to upsert standup: %w", err)
	}

	// Re-read: on a conflict update the insert struct doesn't carry the
	// existing row's id.
	return s.standupRepo.FindByUserAndDate(standup.UserID, standup.Date)
}

// Create writes a standup and fails with ErrStandupExists when the user
// already submitted one for that day.
func (s *StandupService) Create(input SubmitStandupInput) (*models.Standup, error) {
	standup, err := s.build(input)
	if err != nil {
		return nil, err
	}

	if err := s.standupRepo.Create(standup); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStandupExists
		}
		return nil, fmt.Errorf("failed to create standup: %w", err)
	}
	return standup, nil
}

// RecentDigest returns the recent-standups projection.
func (s *StandupService) RecentDigest(limit int) ([]repository.StandupDigestRow, error) {
	rows, err := s.standupRepo.RecentDigest(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load standup digest: %w", err)
	}
	return rows, nil
}

func (s *StandupService) build(input SubmitStandupInput) (*models.Standup, error) {
	if err := ensureUserExists(s.userRepo, input.UserID); err != nil {
		return nil, err
	}

	date, err := parseStandupDate(input.Date)
	if err != nil {
		return nil, err
	}

	return &models.Standup{
		UserID:    input.UserID,
		Date:      date,
		Yesterday: input.Yesterday,
		Today:     input.Today,
		Blockers:  input.Blockers,
		Summary:   input.Summary,
	}, nil
}

// parseStandupDate normalizes to midnight UTC so the per-day uniqueness key
// compares equal regardless of submission time.
func parseStandupDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse(standupDateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidStandupDate
	}
	return date, nil
}
