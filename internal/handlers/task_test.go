package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/onboardai/task-engine/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TaskHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	seedUser(suite.T(), suite.db, "U1", "Alice")

	handler := NewTaskHandler()
	suite.router = gin.New()
	suite.router.POST("/api/tasks", handler.CreateTask)
	suite.router.GET("/api/tasks", handler.ListTasks)
	suite.router.GET("/api/tasks/active", handler.ActiveTasks)
	suite.router.GET("/api/tasks/:id", handler.GetTask)
	suite.router.PATCH("/api/tasks/:id", handler.UpdateTask)
	suite.router.GET("/api/users/:user_id/next-task", handler.NextTask)
	suite.router.GET("/api/users/:user_id/task-summary", handler.TaskSummary)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Created() {
	w := performJSON(suite.T(), suite.router, "POST", "/api/tasks", gin.H{
		"user_id":  "U1",
		"title":    "set up dev env",
		"priority": "high",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Equal("U1", body["user_id"])
	suite.Equal("set up dev env", body["title"])
	suite.Equal("pending", body["status"])
	suite.Equal("high", body["priority"])
}

func (suite *TaskHandlerTestSuite) TestCreateTask_RejectsUnknownStatus() {
	w := performJSON(suite.T(), suite.router, "POST", "/api/tasks", gin.H{
		"user_id": "U1",
		"title":   "bad",
		"status":  "cancelled",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Equal("VALIDATION_ERROR", body["code"])

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_RejectsUnknownUser() {
	w := performJSON(suite.T(), suite.router, "POST", "/api/tasks", gin.H{
		"user_id": "ghost",
		"title":   "orphan",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal("INVALID_REFERENCE", decodeBody(suite.T(), w)["code"])
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_PartialAndCompletion() {
	w := performJSON(suite.T(), suite.router, "POST", "/api/tasks", gin.H{
		"user_id": "U1",
		"title":   "close me out",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	id := decodeBody(suite.T(), w)["id"].(float64)

	w = performJSON(suite.T(), suite.router, "PATCH", "/api/tasks/"+strconv.FormatUint(uint64(id), 10), gin.H{
		"status": "completed",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Equal("completed", body["status"])
	suite.NotNil(body["completed_at"])
	suite.Equal("close me out", body["title"])
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	w := performJSON(suite.T(), suite.router, "PATCH", "/api/tasks/424242", gin.H{
		"status": "completed",
	})
	suite.Require().Equal(http.StatusNotFound, w.Code)
	suite.Equal("NOT_FOUND", decodeBody(suite.T(), w)["code"])
}

func (suite *TaskHandlerTestSuite) TestNextTask_PicksMostUrgent() {
	for _, payload := range []gin.H{
		{"user_id": "U1", "title": "low", "priority": "low"},
		{"user_id": "U1", "title": "urgent", "priority": "urgent"},
		{"user_id": "U1", "title": "high", "priority": "high"},
	} {
		w := performJSON(suite.T(), suite.router, "POST", "/api/tasks", payload)
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	w := performJSON(suite.T(), suite.router, "GET", "/api/users/U1/next-task", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("urgent", decodeBody(suite.T(), w)["title"])
}

func (suite *TaskHandlerTestSuite) TestNextTask_NoContentWhenNothingActionable() {
	w := performJSON(suite.T(), suite.router, "GET", "/api/users/U1/next-task", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
}

func (suite *TaskHandlerTestSuite) TestTaskSummary() {
	for _, payload := range []gin.H{
		{"user_id": "U1", "title": "a"},
		{"user_id": "U1", "title": "b", "status": "in_progress"},
		{"user_id": "U1", "title": "c", "status": "blocked"},
	} {
		w := performJSON(suite.T(), suite.router, "POST", "/api/tasks", payload)
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	w := performJSON(suite.T(), suite.router, "GET", "/api/users/U1/task-summary", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Equal(float64(3), body["total"])
	suite.Equal(float64(1), body["pending"])
	suite.Equal(float64(1), body["in_progress"])
	suite.Equal(float64(0), body["completed"])
	suite.Equal(float64(1), body["blocked"])
}

func (suite *TaskHandlerTestSuite) TestActiveTasks_ExcludesCompleted() {
	w := performJSON(suite.T(), suite.router, "POST", "/api/tasks", gin.H{
		"user_id": "U1", "title": "open one",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = performJSON(suite.T(), suite.router, "POST", "/api/tasks", gin.H{
		"user_id": "U1", "title": "done one", "status": "completed",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = performJSON(suite.T(), suite.router, "GET", "/api/tasks/active", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	rows := decodeBody(suite.T(), w)["tasks"].([]interface{})
	suite.Require().Len(rows, 1)
	row := rows[0].(map[string]interface{})
	suite.Equal("open one", row["title"])
	suite.Equal("Alice", row["user_name"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_StatusFilter() {
	w := performJSON(suite.T(), suite.router, "POST", "/api/tasks", gin.H{
		"user_id": "U1", "title": "pending one",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	w = performJSON(suite.T(), suite.router, "POST", "/api/tasks", gin.H{
		"user_id": "U1", "title": "blocked one", "status": "blocked",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = performJSON(suite.T(), suite.router, "GET", "/api/tasks?user_id=U1&status=blocked", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	tasks := decodeBody(suite.T(), w)["tasks"].([]interface{})
	suite.Require().Len(tasks, 1)
	suite.Equal("blocked one", tasks[0].(map[string]interface{})["title"])
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
