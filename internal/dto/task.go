package dto

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
)

// CreateTaskRequest is the write payload for POST /api/tasks
type CreateTaskRequest struct {
	UserID      string     `json:"user_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Source      string     `json:"source"`
	SourceID    string     `json:"source_id"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest is the write payload for PATCH /api/tasks/:id. Absent
// fields are left untouched.
type UpdateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
	Priority     *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64              `json:"id"`
	UserID      string              `json:"user_id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	Source      string              `json:"source,omitempty"`
	SourceID    string              `json:"source_id,omitempty"`
	DueDate     *time.Time          `json:"due_date"`
	CompletedAt *time.Time          `json:"completed_at"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Source:      task.Source,
		SourceID:    task.SourceID,
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = ToTaskDTO(t)
	}
	return dtos
}
