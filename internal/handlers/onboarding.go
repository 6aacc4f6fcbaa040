package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onboardai/task-engine/internal/database"
	"github.com/onboardai/task-engine/internal/dto"
	apierrors "github.com/onboardai/task-engine/internal/errors"
	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"github.com/onboardai/task-engine/internal/services"
)

type OnboardingHandler struct {
	onboardingService *services.OnboardingService
}

func NewOnboardingHandler() *OnboardingHandler {
	db := database.GetDB()
	return &OnboardingHandler{
		onboardingService: services.NewOnboardingService(
			repository.NewOnboardingRepository(db),
			repository.NewUserRepository(db),
		),
	}
}

// CreateOnboarding starts an onboarding track for a user
func (h *OnboardingHandler) CreateOnboarding(c *gin.Context) {
	var req dto.CreateOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	onboarding, err := h.onboardingService.Create(services.CreateOnboardingInput{
		UserID:             req.UserID,
		Role:               req.Role,
		StartDate:          req.StartDate,
		ManagerID:          req.ManagerID,
		Status:             models.OnboardingStatus(req.Status),
		ProgressPercentage: req.ProgressPercentage,
	})
	if err != nil {
		respondOnboardingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOnboardingDTO(*onboarding))
}

// UpdateOnboarding applies a partial update to an onboarding record
func (h *OnboardingHandler) UpdateOnboarding(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.Validation(c, "Invalid onboarding id")
		return
	}

	var req dto.UpdateOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	input := services.UpdateOnboardingInput{
		Role:               req.Role,
		StartDate:          req.StartDate,
		ManagerID:          req.ManagerID,
		ProgressPercentage: req.ProgressPercentage,
	}
	if req.Status != nil {
		status := models.OnboardingStatus(*req.Status)
		input.Status = &status
	}

	onboarding, err := h.onboardingService.Update(id, input)
	if err != nil {
		respondOnboardingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOnboardingDTO(*onboarding))
}

// ListUserOnboarding returns a user's onboarding records
func (h *OnboardingHandler) ListUserOnboarding(c *gin.Context) {
	records, err := h.onboardingService.ListForUser(c.Param("user_id"))
	if err != nil {
		apierrors.InternalError(c, "Failed to list onboarding records")
		return
	}

	c.JSON(http.StatusOK, gin.H{"onboarding": dto.ToOnboardingDTOs(records)})
}

func respondOnboardingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidOnboardingStatus),
		errors.Is(err, services.ErrProgressOutOfRange),
		errors.Is(err, services.ErrUserIDRequired):
		apierrors.Validation(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.InvalidReference(c, err.Error())
	case errors.Is(err, services.ErrOnboardingNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Onboarding operation failed")
	}
}
