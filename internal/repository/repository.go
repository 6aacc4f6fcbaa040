package repository

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Upsert creates a user or refreshes email/name/role for an existing one
	Upsert(user *models.User) error

	// FindByExternalID finds a user by the external user id
	FindByExternalID(userID string) (*models.User, error)

	// List retrieves users, most recent first
	List(limit int) ([]models.User, error)

	// Update updates a user and stamps updated_at
	Update(user *models.User) error

	// Delete removes a user, cascading to tasks, standups and onboarding
	// records, and detaching conversations
	Delete(userID string) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	UserID string
	Status *models.TaskStatus
	Limit  int
}

// TaskSummary is the per-user status breakdown. The four status counts always
// sum to Total.
type TaskSummary struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Blocked    int64 `json:"blocked"`
}

// ActiveTaskRow is the active-tasks projection: every actionable task across
// all users joined to the owner's display name, triage-ordered.
type ActiveTaskRow struct {
	TaskID    uint64              `json:"task_id"`
	UserID    string              `json:"user_id"`
	UserName  string              `json:"user_name"`
	Title     string              `json:"title"`
	Status    models.TaskStatus   `json:"status"`
	Priority  models.TaskPriority `json:"priority"`
	DueDate   *time.Time          `json:"due_date"`
	CreatedAt time.Time           `json:"created_at"`
}

// StandupDigestRow is the recent-standups projection: one row per standup with
// item counts instead of item content.
type StandupDigestRow struct {
	StandupID      uint64    `json:"standup_id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	Date           time.Time `json:"date"`
	YesterdayCount int       `json:"yesterday_count"`
	TodayCount     int       `json:"today_count"`
	BlockerCount   int       `json:"blocker_count"`
	Summary        string    `json:"summary,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by its internal id
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks with optional filters, most recent first
	List(filter TaskFilter) ([]models.Task, error)

	// Update updates a task and stamps updated_at
	Update(task *models.Task) error

	// NextForUser returns the single highest-priority actionable task for a
	// user, or nil when there is none
	NextForUser(userID string) (*models.Task, error)

	// SummaryForUser counts the user's tasks by status
	SummaryForUser(userID string) (*TaskSummary, error)

	// ActiveAcrossUsers returns the global active-tasks projection
	ActiveAcrossUsers() ([]ActiveTaskRow, error)
}

// StandupRepository defines the interface for standup data access
type StandupRepository interface {
	// Create inserts a standup; a second standup for the same user and day
	// fails with gorm.ErrDuplicatedKey
	Create(standup *models.Standup) error

	// Upsert inserts a standup or replaces the lists and summary of the
	// existing row for the same user and day
	Upsert(standup *models.Standup) error

	// FindByUserAndDate finds a user's standup for a calendar day
	FindByUserAndDate(userID string, date time.Time) (*models.Standup, error)

	// RecentDigest returns the recent-standups projection
	RecentDigest(limit int) ([]StandupDigestRow, error)
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting record
	Create(meeting *models.Meeting) error

	// FindByExternalID finds a meeting by the external meeting id
	FindByExternalID(meetingID string) (*models.Meeting, error)

	// Update updates a meeting and stamps updated_at
	Update(meeting *models.Meeting) error

	// List retrieves meetings, most recent first
	List(limit int) ([]models.Meeting, error)
}

// OnboardingRepository defines the interface for onboarding data access
type OnboardingRepository interface {
	// Create creates a new onboarding record
	Create(onboarding *models.Onboarding) error

	// FindByID finds an onboarding record by its internal id
	FindByID(id uint64) (*models.Onboarding, error)

	// ListByUser retrieves a user's onboarding records, most recent first
	ListByUser(userID string) ([]models.Onboarding, error)

	// Update updates an onboarding record and stamps updated_at
	Update(onboarding *models.Onboarding) error
}

// ConversationRepository defines the interface for conversation data access
type ConversationRepository interface {
	// Create creates a new conversation record
	Create(conversation *models.Conversation) error

	// FindByExternalID finds a conversation by the external conversation id
	FindByExternalID(conversationID string) (*models.Conversation, error)

	// Update updates a conversation and stamps updated_at
	Update(conversation *models.Conversation) error
}
