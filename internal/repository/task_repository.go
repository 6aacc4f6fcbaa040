package repository

import (
	"errors"
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"gorm.io/gorm"
)

// triageOrder is the strict total order shared by NextForUser and the
// active-tasks projection: urgency first, then soonest due date with undated
// tasks last, then creation time, then the internal id as the final stable
// tiebreaker.
const triageOrder = `CASE tasks.priority
		WHEN 'urgent' THEN 1
		WHEN 'high' THEN 2
		WHEN 'medium' THEN 3
		ELSE 4
	END,
	CASE WHEN tasks.due_date IS NULL THEN 1 ELSE 0 END,
	tasks.due_date ASC,
	tasks.created_at ASC,
	tasks.id ASC`

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by its internal id
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks with optional filters, most recent first
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})
	if filter.UserID != "" {
		query = query.Where("tasks.user_id = ?", filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("tasks.created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task and stamps updated_at. The stamp always wins over
// whatever the caller left in the struct.
func (r *GormTaskRepository) Update(task *models.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

// NextForUser returns the single highest-priority actionable task for a user.
// A user with no actionable tasks gets (nil, nil), not an error.
func (r *GormTaskRepository) NextForUser(userID string) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Where("tasks.user_id = ?", userID).
		Where("tasks.status IN ?", []models.TaskStatus{models.TaskStatusPending, models.TaskStatusInProgress}).
		Order(triageOrder).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// SummaryForUser counts the user's tasks by status at call time.
func (r *GormTaskRepository) SummaryForUser(userID string) (*TaskSummary, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}

	err := r.db.Model(&models.Task{}).
		Select("tasks.status, COUNT(*) AS count").
		Where("tasks.user_id = ?", userID).
		Group("tasks.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &TaskSummary{}
	for _, row := range rows {
		summary.Total += row.Count
		switch row.Status {
		case models.TaskStatusPending:
			summary.Pending = row.Count
		case models.TaskStatusInProgress:
			summary.InProgress = row.Count
		case models.TaskStatusCompleted:
			summary.Completed = row.Count
		case models.TaskStatusBlocked:
			summary.Blocked = row.Count
		}
	}
	return summary, nil
}

// ActiveAcrossUsers returns every actionable task joined to its owner's
// display name, triage-ordered across all users.
func (r *GormTaskRepository) ActiveAcrossUsers() ([]ActiveTaskRow, error) {
	var rows []ActiveTaskRow

	err := r.db.Table("tasks").
		Select(`tasks.id AS task_id, tasks.user_id, users.name AS user_name,
			tasks.title, tasks.status, tasks.priority, tasks.due_date, tasks.created_at`).
		Joins("JOIN users ON users.user_id = tasks.user_id").
		Where("tasks.status IN ?", []models.TaskStatus{models.TaskStatusPending, models.TaskStatusInProgress}).
		Order(triageOrder).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
