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

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler() *UserHandler {
	db := database.GetDB()
	return &UserHandler{
		userService: services.NewUserService(repository.NewUserRepository(db)),
	}
}

// UpsertUser creates a user or refreshes an existing one, keyed by the
// external user id
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req dto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.userService.Upsert(services.UpsertUserInput{
		UserID: req.UserID,
		Email:  req.Email,
		Name:   req.Name,
		Role:   req.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserIDRequired) {
			apierrors.Validation(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to save user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// GetUser returns a user by external id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.Get(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ListUsers returns users, most recent first
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit := utils.GetLimitParam(c, constants.DefaultUserListLimit)

	users, err := h.userService.List(limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}

// DeleteUser removes a user; owned tasks, standups and onboarding records go
// with it, conversations keep their row without the user link
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Param("user_id")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
