package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
	ErrTaskNotFound        = errors.New("task not found")
)

// TaskService handles task business logic: enum validation at the store
// boundary, referential checks against users, the next-task selector and the
// per-user summary.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	Source      string
	SourceID    string
	DueDate     *time.Time
}

// UpdateTaskInput represents input for updating a task; nil fields are left
// untouched
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Status       *models.TaskStatus
	Priority     *models.TaskPriority
	DueDate      *time.Time
	ClearDueDate bool
	CompletedAt  *time.Time
}

// Create validates and persists a new task. Nothing is written when
// validation fails.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if !input.Status.IsValid() {
		return nil, ErrInvalidTaskStatus
	}

	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if !input.Priority.IsValid() {
		return nil, ErrInvalidTaskPriority
	}

	if err := ensureUserExists(s.userRepo, input.UserID); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Source:      input.Source,
		SourceID:    input.SourceID,
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update applies a partial update. The repository stamps updated_at on the
// way out regardless of what the caller supplied. A transition to completed
// records a completion time when the caller didn't pass one.
func (s *TaskService) Update(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return nil, ErrInvalidTaskPriority
		}
		task.Priority = *input.Priority
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.CompletedAt != nil {
		task.CompletedAt = input.CompletedAt
	}

	if task.Status == models.TaskStatusCompleted && task.CompletedAt == nil {
		now := time.Now()
		task.CompletedAt = &now
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Get returns a task by internal id
func (s *TaskService) Get(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// List returns tasks matching the filter, most recent first
func (s *TaskService) List(filter repository.TaskFilter) ([]models.Task, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidTaskStatus
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// NextTask returns the single highest-priority actionable task for a user, or
// nil when there is none. A user with no rows is not an error.
func (s *TaskService) NextTask(userID string) (*models.Task, error) {
	task, err := s.taskRepo.NextForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select next task: %w", err)
	}
	return task, nil
}

// Summary returns the per-user status breakdown as a point-in-time snapshot.
func (s *TaskService) Summary(userID string) (*repository.TaskSummary, error) {
	summary, err := s.taskRepo.SummaryForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize tasks: %w", err)
	}
	return summary, nil
}

// ActiveTasks returns the global triage projection.
func (s *TaskService) ActiveTasks() ([]repository.ActiveTaskRow, error) {
	rows, err := s.taskRepo.ActiveAcrossUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to load active tasks: %w", err)
	}
	return rows, nil
}
