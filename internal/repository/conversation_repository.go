package repository

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"gorm.io/gorm"
)

// GormConversationRepository is a GORM implementation of ConversationRepository
type GormConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &GormConversationRepository{db: db}
}

// Create creates a new conversation record
func (r *GormConversationRepository) Create(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

// FindByExternalID finds a conversation by the external conversation id
func (r *GormConversationRepository) FindByExternalID(conversationID string) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.Where("conversation_id = ?", conversationID).First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// Update updates a conversation and stamps updated_at
func (r *GormConversationRepository) Update(conversation *models.Conversation) error {
	conversation.UpdatedAt = time.Now()
	return r.db.Save(conversation).Error
}
