package models

import "time"

// Meeting is identified by the external meeting id. It is not owned by a
// single user; participants hold external user ids as a many-valued reference.
type Meeting struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	MeetingID    string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"meeting_id"`
	Transcript   string         `gorm:"type:text" json:"transcript,omitempty"`
	Summary      string         `gorm:"type:text" json:"summary,omitempty"`
	ActionItems  ActionItemList `gorm:"type:text" json:"action_items"`
	Participants StringList     `gorm:"type:text" json:"participants"`
	OccurredAt   *time.Time     `json:"occurred_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
