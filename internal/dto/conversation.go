package dto

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
)

// MessageDTO is the validated shape of a conversation message
type MessageDTO struct {
	Role      string     `json:"role" binding:"required"`
	Content   string     `json:"content" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
}

// CreateConversationRequest is the write payload for POST /api/conversations
type CreateConversationRequest struct {
	ConversationID string       `json:"conversation_id" binding:"required"`
	UserID         *string      `json:"user_id"`
	WorkflowType   string       `json:"workflow_type"`
	AgentName      string       `json:"agent_name"`
	Status         string       `json:"status" binding:"omitempty,oneof=active completed failed"`
	Messages       []MessageDTO `json:"messages" binding:"omitempty,dive"`
}

// UpdateConversationRequest is the write payload for
// PATCH /api/conversations/:conversation_id. Absent fields are left untouched.
type UpdateConversationRequest struct {
	WorkflowType *string       `json:"workflow_type"`
	AgentName    *string       `json:"agent_name"`
	Status       *string       `json:"status" binding:"omitempty,oneof=active completed failed"`
	Messages     *[]MessageDTO `json:"messages" binding:"omitempty,dive"`
}

// ConversationDTO represents a conversation in API responses
type ConversationDTO struct {
	ConversationID string                    `json:"conversation_id"`
	UserID         *string                   `json:"user_id"`
	WorkflowType   string                    `json:"workflow_type,omitempty"`
	AgentName      string                    `json:"agent_name,omitempty"`
	Status         models.ConversationStatus `json:"status"`
	Messages       []models.Message          `json:"messages"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// ToMessages converts request messages to the model shape
func ToMessages(messages []MessageDTO) []models.Message {
	converted := make([]models.Message, len(messages))
	for i, m := range messages {
		converted[i] = models.Message{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}
	return converted
}

// ToConversationDTO converts a Conversation model to ConversationDTO
func ToConversationDTO(conversation models.Conversation) ConversationDTO {
	return ConversationDTO{
		ConversationID: conversation.ConversationID,
		UserID:         conversation.UserID,
		WorkflowType:   conversation.WorkflowType,
		AgentName:      conversation.AgentName,
		Status:         conversation.Status,
		Messages:       conversation.Messages,
		CreatedAt:      conversation.CreatedAt,
		UpdatedAt:      conversation.UpdatedAt,
	}
}
