package models

import "time"

// User is keyed by the external chat-platform identifier (UserID), never by
// the surrogate primary key. Every other entity references users.user_id so
// producers never need to know internal ids.
type User struct {
	ID        uint64    `gorm:"primarykey" json:"-"`
	UserID    string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"user_id"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Name      string    `gorm:"type:varchar(255)" json:"name,omitempty"`
	Role      string    `gorm:"type:varchar(100)" json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Tasks      []Task       `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Standups   []Standup    `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"standups,omitempty"`
	Onboarding []Onboarding `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"onboarding,omitempty"`
}
