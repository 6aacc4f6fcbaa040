package repository

import (
	"testing"
	"time"

	"github.com/onboardai/task-engine/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TaskRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TaskRepository
}

func (suite *TaskRepositoryTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.repo = NewTaskRepository(suite.db)
	seedUser(suite.T(), suite.db, "U1", "Alice")
	seedUser(suite.T(), suite.db, "U2", "Bob")
}

func (suite *TaskRepositoryTestSuite) TestNextForUser_SkipsCompletedAndBlocked() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	seedTask(suite.T(), suite.db, "U1", "done", models.TaskStatusCompleted, models.TaskPriorityUrgent, nil, base)
	seedTask(suite.T(), suite.db, "U1", "stuck", models.TaskStatusBlocked, models.TaskPriorityUrgent, nil, base)
	want := seedTask(suite.T(), suite.db, "U1", "open", models.TaskStatusPending, models.TaskPriorityLow, nil, base)

	got, err := suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(want.ID, got.ID)
}

func (suite *TaskRepositoryTestSuite) TestNextForUser_NoActionableTask() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	seedTask(suite.T(), suite.db, "U1", "done", models.TaskStatusCompleted, models.TaskPriorityUrgent, nil, base)

	got, err := suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Nil(got)

	got, err = suite.repo.NextForUser("nobody")
	suite.Require().NoError(err)
	suite.Nil(got)
}

func (suite *TaskRepositoryTestSuite) TestNextForUser_UrgencyDominatesDeadline() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	today := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	tomorrow := today.Add(24 * time.Hour)

	a := seedTask(suite.T(), suite.db, "U1", "A", models.TaskStatusPending, models.TaskPriorityUrgent, datePtr(tomorrow), base)
	b := seedTask(suite.T(), suite.db, "U1", "B", models.TaskStatusPending, models.TaskPriorityUrgent, datePtr(today), base.Add(time.Minute))
	c := seedTask(suite.T(), suite.db, "U1", "C", models.TaskStatusPending, models.TaskPriorityHigh, datePtr(today), base.Add(2*time.Minute))

	// B first: equal urgency, soonest due wins.
	next, err := suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(b.ID, next.ID)

	suite.complete(b.ID)

	// Then A: urgency beats C's sooner due date.
	next, err = suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(a.ID, next.ID)

	suite.complete(a.ID)

	next, err = suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(c.ID, next.ID)
}

func (suite *TaskRepositoryTestSuite) TestNextForUser_UndatedSortsAfterDatedAtSameUrgency() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	undatedUrgent := seedTask(suite.T(), suite.db, "U1", "undated urgent", models.TaskStatusPending, models.TaskPriorityUrgent, nil, base)
	datedUrgent := seedTask(suite.T(), suite.db, "U1", "dated urgent", models.TaskStatusPending, models.TaskPriorityUrgent, datePtr(due), base.Add(time.Minute))
	seedTask(suite.T(), suite.db, "U1", "dated high", models.TaskStatusPending, models.TaskPriorityHigh, datePtr(due), base.Add(2*time.Minute))

	// Dated urgent first, undated urgent second, dated high only third:
	// undated work is deprioritized within an urgency level but never below it.
	next, err := suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(datedUrgent.ID, next.ID)

	suite.complete(datedUrgent.ID)

	next, err = suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(undatedUrgent.ID, next.ID)
}

func (suite *TaskRepositoryTestSuite) TestNextForUser_SpecScenario() {
	t1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := jan1.Add(24 * time.Hour)

	seedTask(suite.T(), suite.db, "U1", "urgent jan2", models.TaskStatusPending, models.TaskPriorityUrgent, datePtr(jan2), t1)
	want := seedTask(suite.T(), suite.db, "U1", "urgent jan1", models.TaskStatusPending, models.TaskPriorityUrgent, datePtr(jan1), t2)
	seedTask(suite.T(), suite.db, "U1", "high undated", models.TaskStatusInProgress, models.TaskPriorityHigh, nil, t3)

	next, err := suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(want.ID, next.ID)
}

func (suite *TaskRepositoryTestSuite) TestNextForUser_CreationTimeBreaksTies() {
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	older := seedTask(suite.T(), suite.db, "U1", "older", models.TaskStatusPending, models.TaskPriorityHigh, datePtr(due), time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	seedTask(suite.T(), suite.db, "U1", "newer", models.TaskStatusPending, models.TaskPriorityHigh, datePtr(due), time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))

	next, err := suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(older.ID, next.ID)
}

func (suite *TaskRepositoryTestSuite) TestNextForUser_ScopedToUser() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	seedTask(suite.T(), suite.db, "U2", "other user urgent", models.TaskStatusPending, models.TaskPriorityUrgent, nil, base)
	mine := seedTask(suite.T(), suite.db, "U1", "mine", models.TaskStatusPending, models.TaskPriorityLow, nil, base)

	next, err := suite.repo.NextForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(mine.ID, next.ID)
}

func (suite *TaskRepositoryTestSuite) TestSummaryForUser_CountsSumToTotal() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	statuses := []models.TaskStatus{
		models.TaskStatusPending, models.TaskStatusPending, models.TaskStatusPending,
		models.TaskStatusInProgress, models.TaskStatusInProgress,
		models.TaskStatusCompleted,
		models.TaskStatusBlocked,
	}
	for i, status := range statuses {
		seedTask(suite.T(), suite.db, "U1", "t", status, models.TaskPriorityMedium, nil, base.Add(time.Duration(i)*time.Minute))
	}
	// Another user's tasks must not leak into the summary.
	seedTask(suite.T(), suite.db, "U2", "other", models.TaskStatusPending, models.TaskPriorityMedium, nil, base)

	summary, err := suite.repo.SummaryForUser("U1")
	suite.Require().NoError(err)
	suite.Equal(int64(7), summary.Total)
	suite.Equal(int64(3), summary.Pending)
	suite.Equal(int64(2), summary.InProgress)
	suite.Equal(int64(1), summary.Completed)
	suite.Equal(int64(1), summary.Blocked)
	suite.Equal(summary.Total, summary.Pending+summary.InProgress+summary.Completed+summary.Blocked)
}

func (suite *TaskRepositoryTestSuite) TestSummaryForUser_EmptyUserIsAllZeros() {
	summary, err := suite.repo.SummaryForUser("nobody")
	suite.Require().NoError(err)
	suite.Equal(int64(0), summary.Total)
	suite.Equal(int64(0), summary.Pending)
	suite.Equal(int64(0), summary.InProgress)
	suite.Equal(int64(0), summary.Completed)
	suite.Equal(int64(0), summary.Blocked)
}

func (suite *TaskRepositoryTestSuite) TestActiveAcrossUsers_GlobalTriageOrder() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	low := seedTask(suite.T(), suite.db, "U1", "low", models.TaskStatusPending, models.TaskPriorityLow, nil, base)
	urgent := seedTask(suite.T(), suite.db, "U2", "urgent", models.TaskStatusInProgress, models.TaskPriorityUrgent, datePtr(due), base.Add(time.Minute))
	seedTask(suite.T(), suite.db, "U1", "completed", models.TaskStatusCompleted, models.TaskPriorityUrgent, nil, base)

	rows, err := suite.repo.ActiveAcrossUsers()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal(urgent.ID, rows[0].TaskID)
	suite.Equal("Bob", rows[0].UserName)
	suite.Equal(low.ID, rows[1].TaskID)
	suite.Equal("Alice", rows[1].UserName)
}

func (suite *TaskRepositoryTestSuite) TestList_FiltersByUserAndStatus() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	seedTask(suite.T(), suite.db, "U1", "pending", models.TaskStatusPending, models.TaskPriorityMedium, nil, base)
	seedTask(suite.T(), suite.db, "U1", "blocked", models.TaskStatusBlocked, models.TaskPriorityMedium, nil, base.Add(time.Minute))
	seedTask(suite.T(), suite.db, "U2", "pending other", models.TaskStatusPending, models.TaskPriorityMedium, nil, base)

	pending := models.TaskStatusPending
	tasks, err := suite.repo.List(TaskFilter{UserID: "U1", Status: &pending})
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal("pending", tasks[0].Title)

	tasks, err = suite.repo.List(TaskFilter{UserID: "U1"})
	suite.Require().NoError(err)
	suite.Len(tasks, 2)
}

func (suite *TaskRepositoryTestSuite) complete(taskID uint64) {
	task, err := suite.repo.FindByID(taskID)
	suite.Require().NoError(err)
	task.Status = models.TaskStatusCompleted
	suite.Require().NoError(suite.repo.Update(task))
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
