//go:build integration
// +build integration

package tests

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	dbadapter "github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/db"
	httpadapter "github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/dto"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/handlers"
	appservice "github.com/CxTrack/PostBuild-CRM-sub002/internal/app/service"
	"github.com/CxTrack/PostBuild-CRM-sub002/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	router := gin.New()
	healthHandler := handlers.NewHealthHandler(s.DB)
	eventRepository := dbadapter.NewEventRepository(s.DB)
	taskRepository := dbadapter.NewTaskRepository(s.DB)
	taskService := appservice.NewTaskService(taskRepository, eventRepository)
	eventService := appservice.NewEventService(eventRepository)
	taskHandler := handlers.NewTaskHandler(taskService)
	eventHandler := handlers.NewEventHandler(eventService)
	httpadapter.RegisterRoutes(router, healthHandler, taskHandler, eventHandler)

	s.router = router
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func (s *TasksIntegrationSuite) createTask(body string) dto.TaskItem {
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func (s *TasksIntegrationSuite) mirrorEventCount(calendarID string) int {
	var count int
	err := s.DB.Get(&count, "SELECT COUNT(*) FROM calendar_events WHERE id = ?", calendarID)
	s.Require().NoError(err)
	return count
}

func (s *TasksIntegrationSuite) TestPostTasks_PendingTaskGetsMirrorEvent() {
	got := s.createTask(`{
		"title":"Call client about invoice",
		"due_date":"2026-07-01",
		"priority":"high"
	}`)

	s.Require().NotZero(got.ID)
	s.Require().Equal("pending", got.Status)
	s.Require().Equal("high", got.Priority)
	s.Require().NotNil(got.CalendarID)

	var row struct {
		Title string    `db:"title"`
		Start time.Time `db:"start"`
		End   time.Time `db:"end"`
		Type  string    `db:"type"`
	}
	err := s.DB.Get(&row, "SELECT title, `start`, `end`, type FROM calendar_events WHERE id = ?", *got.CalendarID)
	s.Require().NoError(err)
	s.Require().Equal("Call client about invoice", row.Title)
	s.Require().Equal("task", row.Type)

	dueDate := time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local)
	s.Require().True(row.Start.Equal(dueDate))
	s.Require().True(row.End.Equal(dueDate.Add(30 * time.Minute)))
}

func (s *TasksIntegrationSuite) TestPostTasks_CompletedTaskHasNoMirror() {
	got := s.createTask(`{
		"title":"Archive old quotes",
		"due_date":"2026-07-01",
		"status":"completed"
	}`)

	s.Require().Equal("completed", got.Status)
	s.Require().Nil(got.CalendarID)

	var count int
	err := s.DB.Get(&count, "SELECT COUNT(*) FROM calendar_events")
	s.Require().NoError(err)
	s.Require().Zero(count)
}

func (s *TasksIntegrationSuite) TestPatchTaskStatus_CompletingRemovesMirror() {
	created := s.createTask(`{"title":"Send estimate","due_date":"2026-07-02"}`)
	s.Require().NotNil(created.CalendarID)
	mirrorID := *created.CalendarID

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+itoa(created.ID)+"/status", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("completed", got.Status)
	s.Require().Nil(got.CalendarID)

	s.Require().Zero(s.mirrorEventCount(mirrorID))

	var calendarID sql.NullString
	s.Require().NoError(s.DB.Get(&calendarID, "SELECT calendar_id FROM tasks WHERE id = ?", created.ID))
	s.Require().False(calendarID.Valid)
}

func (s *TasksIntegrationSuite) TestPatchTaskStatus_BackToPendingRecreatesMirror() {
	created := s.createTask(`{"title":"Order supplies","due_date":"2026-07-03","status":"cancelled"}`)
	s.Require().Nil(created.CalendarID)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+itoa(created.ID)+"/status", strings.NewReader(`{"status":"pending"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("pending", got.Status)
	s.Require().NotNil(got.CalendarID)
	s.Require().Equal(1, s.mirrorEventCount(*got.CalendarID))
}

func (s *TasksIntegrationSuite) TestPatchTaskStatus_SurvivesManuallyDeletedMirror() {
	created := s.createTask(`{"title":"Follow up on quote","due_date":"2026-07-04"}`)
	s.Require().NotNil(created.CalendarID)

	// Simulate the user deleting the mirrored event from the calendar surface.
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+*created.CalendarID, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodPatch, "/api/tasks/"+itoa(created.ID)+"/status", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("completed", got.Status)
	s.Require().Nil(got.CalendarID)
}

func (s *TasksIntegrationSuite) TestDeleteTask_RemovesMirrorEvent() {
	created := s.createTask(`{"title":"Invoice reminder","due_date":"2026-07-05"}`)
	s.Require().NotNil(created.CalendarID)
	mirrorID := *created.CalendarID

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+itoa(created.ID), nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Require().Zero(s.mirrorEventCount(mirrorID))

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks WHERE id = ?", created.ID))
	s.Require().Zero(count)
}

func (s *TasksIntegrationSuite) TestGetTasks_OrdersPendingBeforeDone() {
	s.createTask(`{"title":"Done task","due_date":"2026-07-01","status":"completed"}`)
	s.createTask(`{"title":"Later pending","due_date":"2026-07-20"}`)
	s.createTask(`{"title":"Soon pending","due_date":"2026-07-02"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 3)
	s.Require().Equal("Soon pending", got[0].Title)
	s.Require().Equal("Later pending", got[1].Title)
	s.Require().Equal("Done task", got[2].Title)
}

func (s *TasksIntegrationSuite) TestGetTasks_ScopedByUser() {
	s.createTask(`{"title":"Default user task","due_date":"2026-07-01"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 0)
}

func (s *TasksIntegrationSuite) TestPostTasks_ReturnsBadRequestWhenPayloadIsInvalid() {
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"title":"No due date"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(http.StatusBadRequest, got.ErrDetails.Code)
	s.Require().Equal("Invalid task payload", got.ErrDetails.Message)
}

func (s *TasksIntegrationSuite) TestPatchTasks_ReturnsNotFoundWhenTaskDoesNotExist() {
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/999999", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(http.StatusNotFound, got.ErrDetails.Code)
	s.Require().Equal("Task not found", got.ErrDetails.Message)
}
