package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// IsValid reports whether the status is one of the enumerated values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	}
	return false
}

// Actionable reports whether a task in this status is still open work.
func (s TaskStatus) Actionable() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// IsValid reports whether the priority is one of the enumerated values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// Rank maps a priority to its sort rank; lower ranks sort first.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityUrgent:
		return 1
	case TaskPriorityHigh:
		return 2
	case TaskPriorityMedium:
		return 3
	default:
		return 4
	}
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	UserID      string       `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Source      string       `gorm:"type:varchar(50)" json:"source,omitempty"`
	SourceID    string       `gorm:"type:varchar(64)" json:"source_id,omitempty"`
	DueDate     *time.Time   `gorm:"index" json:"due_date"`
	CompletedAt *time.Time   `json:"completed_at"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
