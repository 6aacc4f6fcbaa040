package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onboardai/task-engine/internal/database"
	"github.com/onboardai/task-engine/internal/dto"
	apierrors "github.com/onboardai/task-engine/internal/errors"
	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"github.com/onboardai/task-engine/internal/services"
)

type ConversationHandler struct {
	conversationService *services.ConversationService
}

func NewConversationHandler() *ConversationHandler {
	db := database.GetDB()
	return &ConversationHandler{
		conversationService: services.NewConversationService(
			repository.NewConversationRepository(db),
			repository.NewUserRepository(db),
		),
	}
}

// CreateConversation records a conversation keyed by the external id
func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	conversation, err := h.conversationService.Create(services.CreateConversationInput{
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		WorkflowType:   req.WorkflowType,
		AgentName:      req.AgentName,
		Status:         models.ConversationStatus(req.Status),
		Messages:       dto.ToMessages(req.Messages),
	})
	if err != nil {
		respondConversationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConversationDTO(*conversation))
}

// UpdateConversation applies a partial update to a conversation
func (h *ConversationHandler) UpdateConversation(c *gin.Context) {
	var req dto.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	input := services.UpdateConversationInput{
		WorkflowType: req.WorkflowType,
		AgentName:    req.AgentName,
	}
	if req.Status != nil {
		status := models.ConversationStatus(*req.Status)
		input.Status = &status
	}
	if req.Messages != nil {
		messages := dto.ToMessages(*req.Messages)
		input.Messages = &messages
	}

	conversation, err := h.conversationService.Update(c.Param("conversation_id"), input)
	if err != nil {
		respondConversationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversationDTO(*conversation))
}

// GetConversation returns a conversation by external id
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	conversation, err := h.conversationService.Get(c.Param("conversation_id"))
	if err != nil {
		respondConversationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversationDTO(*conversation))
}

func respondConversationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrConversationIDRequired),
		errors.Is(err, services.ErrInvalidConversationStatus),
		errors.Is(err, services.ErrMessageShapeInvalid),
		errors.Is(err, services.ErrUserIDRequired):
		apierrors.Validation(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.InvalidReference(c, err.Error())
	case errors.Is(err, services.ErrConversationExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrConversationNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Conversation operation failed")
	}
}
