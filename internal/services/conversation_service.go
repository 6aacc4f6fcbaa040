package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrConversationIDRequired    = errors.New("conversation_id is required")
	ErrConversationNotFound      = errors.New("conversation not found")
	ErrConversationExists        = errors.New("conversation already exists")
	ErrInvalidConversationStatus = errors.New("invalid conversation status")
	ErrMessageShapeInvalid       = errors.New("every message needs a role and content")
)

// ConversationService handles conversation business logic
type ConversationService struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
}

// NewConversationService creates a new ConversationService
func NewConversationService(conversationRepo repository.ConversationRepository, userRepo repository.UserRepository) *ConversationService {
	return &ConversationService{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
	}
}

// CreateConversationInput represents input for recording a conversation
type CreateConversationInput struct {
	ConversationID string
	UserID         *string
	WorkflowType   string
	AgentName      string
	Status         models.ConversationStatus
	Messages       []models.Message
}

// UpdateConversationInput represents a partial conversation update; nil
// fields are left untouched
type UpdateConversationInput struct {
	WorkflowType *string
	AgentName    *string
	Status       *models.ConversationStatus
	Messages     *[]models.Message
}

// Create validates and persists a conversation record.
func (s *ConversationService) Create(input CreateConversationInput) (*models.Conversation, error) {
	if input.ConversationID == "" {
		return nil, ErrConversationIDRequired
	}
	if input.Status == "" {
		input.Status = models.ConversationStatusActive
	}
	if !input.Status.IsValid() {
		return nil, ErrInvalidConversationStatus
	}
	if err := validateMessages(input.Messages); err != nil {
		return nil, err
	}
	if input.UserID != nil {
		if err := ensureUserExists(s.userRepo, *input.UserID); err != nil {
			return nil, err
		}
	}

	conversation := &models.Conversation{
		ConversationID: input.ConversationID,
		UserID:         input.UserID,
		WorkflowType:   input.WorkflowType,
		AgentName:      input.AgentName,
		Status:         input.Status,
		Messages:       input.Messages,
	}

	if err := s.conversationRepo.Create(conversation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConversationExists
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conversation, nil
}

// Update applies a partial update to a conversation.
func (s *ConversationService) Update(conversationID string, input UpdateConversationInput) (*models.Conversation, error) {
	conversation, err := s.Get(conversationID)
	if err != nil {
		return nil, err
	}

	if input.WorkflowType != nil {
		conversation.WorkflowType = *input.WorkflowType
	}
	if input.AgentName != nil {
		conversation.AgentName = *input.AgentName
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, ErrInvalidConversationStatus
		}
		conversation.Status = *input.Status
	}
	if input.Messages != nil {
		if err := validateMessages(*input.Messages); err != nil {
			return nil, err
		}
		conversation.Messages = *input.Messages
	}

	if err := s.conversationRepo.Update(conversation); err != nil {
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}
	return conversation, nil
}

// Get returns a conversation by external id
func (s *ConversationService) Get(conversationID string) (*models.Conversation, error) {
	conversation, err := s.conversationRepo.FindByExternalID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return conversation, nil
}

func validateMessages(messages []models.Message) error {
	for _, m := range messages {
		if strings.TrimSpace(m.Role) == "" || strings.TrimSpace(m.Content) == "" {
			return ErrMessageShapeInvalid
		}
	}
	return nil
}
