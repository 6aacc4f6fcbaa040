package repository

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStandupRepository is a GORM implementation of StandupRepository
type GormStandupRepository struct {
	db *gorm.DB
}

// NewStandupRepository creates a new StandupRepository
func NewStandupRepository(db *gorm.DB) StandupRepository {
	return &GormStandupRepository{db: db}
}

// Create inserts a standup. The (user_id, standup_date) unique index rejects a
// second standup for the same day.
func (r *GormStandupRepository) Create(standup *models.Standup) error {
	return r.db.Create(standup).Error
}

// Upsert inserts a standup or replaces the lists and summary of the existing
// row for the same user and day. This is the idempotency guard for retrying
// producers.
func (r *GormStandupRepository) Upsert(standup *models.Standup) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "standup_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"yesterday", "today", "blockers", "summary"}),
		}).
		Create(standup).Error
}

// FindByUserAndDate finds a user's standup for a calendar day
func (r *GormStandupRepository) FindByUserAndDate(userID string, date time.Time) (*models.Standup, error) {
	var standup models.Standup
	if err := r.db.Where("user_id = ? AND standup_date = ?", userID, date).First(&standup).Error; err != nil {
		return nil, err
	}
	return &standup, nil
}

// RecentDigest joins standups to their users and reduces the item lists to
// counts. The list lengths are computed after scanning so the query stays
// portable across dialects.
func (r *GormStandupRepository) RecentDigest(limit int) ([]StandupDigestRow, error) {
	var standups []struct {
		models.Standup
		UserName string
	}

	err := r.db.Table("standups").
		Select("standups.*, users.name AS user_name").
		Joins("JOIN users ON users.user_id = standups.user_id").
		Order("standups.standup_date DESC, standups.created_at DESC").
		Limit(limit).
		Scan(&standups).Error
	if err != nil {
		return nil, err
	}

	rows := make([]StandupDigestRow, len(standups))
	for i, s := range standups {
		rows[i] = StandupDigestRow{
			StandupID:      s.ID,
			UserID:         s.UserID,
			UserName:       s.UserName,
			Date:           s.Date,
			YesterdayCount: len(s.Yesterday),
			TodayCount:     len(s.Today),
			BlockerCount:   len(s.Blockers),
			Summary:        s.Summary,
			CreatedAt:      s.CreatedAt,
		}
	}
	return rows, nil
}
