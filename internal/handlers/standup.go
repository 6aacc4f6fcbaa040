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

type StandupHandler struct {
	standupService *services.StandupService
}

func NewStandupHandler() *StandupHandler {
	db := database.GetDB()
	return &StandupHandler{
		standupService: services.NewStandupService(
			repository.NewStandupRepository(db),
			repository.NewUserRepository(db),
		),
	}
}

// UpsertStandup writes a standup, replacing an existing one for the same
// user and day. This is the retry-safe path for producers.
func (h *StandupHandler) UpsertStandup(c *gin.Context) {
	input, ok := h.bind(c)
	if !ok {
		return
	}

	standup, err := h.standupService.Upsert(input)
	if err != nil {
		respondStandupError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStandupDTO(*standup))
}

// CreateStandup inserts a standup and conflicts when the user already has one
// for that day
func (h *StandupHandler) CreateStandup(c *gin.Context) {
	input, ok := h.bind(c)
	if !ok {
		return
	}

	standup, err := h.standupService.Create(input)
	if err != nil {
		respondStandupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStandupDTO(*standup))
}

// RecentStandups returns the recent-standups projection: per-standup item
// counts joined to user names
func (h *StandupHandler) RecentStandups(c *gin.Context) {
	limit := utils.GetLimitParam(c, constants.DefaultStandupListLimit)

	rows, err := h.standupService.RecentDigest(limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to load standups")
		return
	}

	c.JSON(http.StatusOK, gin.H{"standups": rows})
}

func (h *StandupHandler) bind(c *gin.Context) (services.SubmitStandupInput, bool) {
	var req dto.SubmitStandupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return services.SubmitStandupInput{}, false
	}

	return services.SubmitStandupInput{
		UserID:    req.UserID,
		Date:      req.Date,
		Yesterday: req.Yesterday,
		Today:     req.Today,
		Blockers:  req.Blockers,
		Summary:   req.Summary,
	}, true
}

func respondStandupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidStandupDate),
		errors.Is(err, services.ErrUserIDRequired):
		apierrors.Validation(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.InvalidReference(c, err.Error())
	case errors.Is(err, services.ErrStandupExists):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Standup operation failed")
	}
}
