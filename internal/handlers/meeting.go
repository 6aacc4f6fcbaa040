package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onboardai/task-engine/internal/constants"
	"github.com/onboardai/task-engine/internal/database"
	"github.com/onboardai/task-engine/internal/dto"
	apierrors "github.com/onboardai/task-engine/internal/errors"
	"github.com/onboardai/task-engine/internal/repository"
	"github.com/onboardai/task-engine/internal/services"
	"github.com/onboardai/task-engine/internal/utils"
)

type MeetingHandler struct {
	meetingService *services.MeetingService
}

func NewMeetingHandler() *MeetingHandler {
	db := database.GetDB()
	return &MeetingHandler{
		meetingService: services.NewMeetingService(repository.NewMeetingRepository(db)),
	}
}

// CreateMeeting records a meeting keyed by the external meeting id
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	meeting, err := h.meetingService.Create(services.CreateMeetingInput{
		MeetingID:    req.MeetingID,
		Transcript:   req.Transcript,
		Summary:      req.Summary,
		ActionItems:  dto.ToActionItems(req.ActionItems),
		Participants: req.Participants,
		OccurredAt:   req.OccurredAt,
	})
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMeetingDTO(*meeting))
}

// UpdateMeeting applies a partial update to a meeting
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	var req dto.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	input := services.UpdateMeetingInput{
		Transcript: req.Transcript,
		Summary:    req.Summary,
		OccurredAt: req.OccurredAt,
	}
	if req.ActionItems != nil {
		items := dto.ToActionItems(*req.ActionItems)
		input.ActionItems = &items
	}
	if req.Participants != nil {
		participants := *req.Participants
		input.Participants = &participants
	}

	meeting, err := h.meetingService.Update(c.Param("meeting_id"), input)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTO(*meeting))
}

// GetMeeting returns a meeting by external id
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meeting, err := h.meetingService.Get(c.Param("meeting_id"))
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTO(*meeting))
}

// ListMeetings returns meetings, most recent first
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	limit := utils.GetLimitParam(c, constants.DefaultTaskListLimit)

	meetings, err := h.meetingService.List(limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to list meetings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"meetings": dto.ToMeetingDTOs(meetings)})
}

func respondMeetingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMeetingIDRequired),
		errors.Is(err, services.ErrActionItemTitleRequired):
		apierrors.Validation(c, err.Error())
	case errors.Is(err, services.ErrMeetingExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrMeetingNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Meeting operation failed")
	}
}
