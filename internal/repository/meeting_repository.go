package repository

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"gorm.io/gorm"
)

// GormMeetingRepository is a GORM implementation of MeetingRepository
type GormMeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &GormMeetingRepository{db: db}
}

// Create creates a new meeting record
func (r *GormMeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// FindByExternalID finds a meeting by the external meeting id
func (r *GormMeetingRepository) FindByExternalID(meetingID string) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.Where("meeting_id = ?", meetingID).First(&meeting).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Update updates a meeting and stamps updated_at
func (r *GormMeetingRepository) Update(meeting *models.Meeting) error {
	meeting.UpdatedAt = time.Now()
	return r.db.Save(meeting).Error
}

// List retrieves meetings, most recent first
func (r *GormMeetingRepository) List(limit int) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}
