package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onboardai/task-engine/internal/constants"
	"github.com/onboardai/task-engine/internal/database"
	"github.com/onboardai/task-engine/internal/dto"
	apierrors "github.com/onboardai/task-engine/internal/errors"
	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"github.com/onboardai/task-engine/internal/services"
	"github.com/onboardai/task-engine/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler() *TaskHandler {
	db := database.GetDB()
	return &TaskHandler{
		taskService: services.NewTaskService(
			repository.NewTaskRepository(db),
			repository.NewUserRepository(db),
		),
	}
}

// CreateTask creates a task for a user
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.TaskPriority(req.Priority),
		Source:      req.Source,
		SourceID:    req.SourceID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update to a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.Validation(c, "Invalid task id")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationWithDetails(c, "Invalid request body", err.Error())
		return
	}

	input := services.UpdateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		CompletedAt:  req.CompletedAt,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	task, err := h.taskService.Update(taskID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// GetTask returns a task by internal id
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.Validation(c, "Invalid task id")
		return
	}

	task, err := h.taskService.Get(taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ListTasks returns tasks, optionally filtered by user_id and/or status
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := repository.TaskFilter{
		UserID: c.Query("user_id"),
		Limit:  utils.GetLimitParam(c, constants.DefaultTaskListLimit),
	}
	if statusParam := c.Query("status"); statusParam != "" {
		status := models.TaskStatus(statusParam)
		filter.Status = &status
	}

	tasks, err := h.taskService.List(filter)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// NextTask returns the single highest-priority actionable task for a user,
// or 204 when the user has none
func (h *TaskHandler) NextTask(c *gin.Context) {
	task, err := h.taskService.NextTask(c.Param("user_id"))
	if err != nil {
		apierrors.InternalError(c, "Failed to select next task")
		return
	}
	if task == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// TaskSummary returns the per-user status breakdown
func (h *TaskHandler) TaskSummary(c *gin.Context) {
	summary, err := h.taskService.Summary(c.Param("user_id"))
	if err != nil {
		apierrors.InternalError(c, "Failed to summarize tasks")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ActiveTasks returns the global triage projection
func (h *TaskHandler) ActiveTasks(c *gin.Context) {
	rows, err := h.taskService.ActiveTasks()
	if err != nil {
		apierrors.InternalError(c, "Failed to load active tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": rows})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidTaskStatus),
		errors.Is(err, services.ErrInvalidTaskPriority),
		errors.Is(err, services.ErrUserIDRequired):
		apierrors.Validation(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.InvalidReference(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Task operation failed")
	}
}
