package models

import "time"

// Standup is append-once: at most one row per user per calendar day, keyed by
// (user_id, standup_date). Revisions go through the upsert path; there is no
// updated_at because the record is not expected to be edited after the day ends.
type Standup struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	UserID    string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_standups_user_date" json:"user_id"`
	Date      time.Time  `gorm:"column:standup_date;type:date;not null;uniqueIndex:idx_standups_user_date" json:"date"`
	Yesterday StringList `gorm:"type:text" json:"yesterday"`
	Today     StringList `gorm:"type:text" json:"today"`
	Blockers  StringList `gorm:"type:text" json:"blockers"`
	Summary   string     `gorm:"type:text" json:"summary,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
