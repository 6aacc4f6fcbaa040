package models

import "time"

type ConversationStatus string

const (
	ConversationStatusActive    ConversationStatus = "active"
	ConversationStatusCompleted ConversationStatus = "completed"
	ConversationStatusFailed    ConversationStatus = "failed"
)

// IsValid reports whether the status is one of the enumerated values.
func (s ConversationStatus) IsValid() bool {
	switch s {
	case ConversationStatusActive, ConversationStatusCompleted, ConversationStatusFailed:
		return true
	}
	return false
}

// Conversation records an agent-driven interaction. The user reference is
// optional and survives user deletion: the row stays, the link is nulled.
type Conversation struct {
	ID             uint64             `gorm:"primarykey" json:"id"`
	ConversationID string             `gorm:"type:varchar(64);uniqueIndex;not null" json:"conversation_id"`
	UserID         *string            `gorm:"type:varchar(64);index" json:"user_id"`
	WorkflowType   string             `gorm:"type:varchar(50)" json:"workflow_type,omitempty"`
	AgentName      string             `gorm:"type:varchar(100)" json:"agent_name,omitempty"`
	Status         ConversationStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Messages       MessageList        `gorm:"type:text" json:"messages"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}
