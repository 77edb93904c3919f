package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/dto"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/handlers"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/middleware"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
	"github.com/CxTrack/PostBuild-CRM-sub002/pkg/apierrors"
	"github.com/CxTrack/PostBuild-CRM-sub002/pkg/translator"
)

type eventServiceMock struct {
	mock.Mock
}

func (m *eventServiceMock) FetchSchedule(ctx context.Context, userID uint64) (domain.Schedule, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Schedule), args.Error(1)
}

func (m *eventServiceMock) AddEvent(ctx context.Context, userID uint64, input domain.CreateEventInput) (domain.CalendarEvent, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.CalendarEvent), args.Error(1)
}

func (m *eventServiceMock) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (domain.CalendarEvent, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.CalendarEvent), args.Error(1)
}

func (m *eventServiceMock) DeleteEvent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newEventRouter(serviceMock *eventServiceMock) *gin.Engine {
	handler := handlers.NewEventHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware(), middleware.ScopeMiddleware())
	api.GET("/schedule", handler.FetchSchedule)
	api.POST("/events", handler.CreateEvent)
	api.PATCH("/events/:id", handler.UpdateEvent)
	api.DELETE("/events/:id", handler.DeleteEvent)
	return router
}

func TestEventHandler_FetchSchedule_Success(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)
	event := domain.CalendarEvent{
		ID:     "d19adf1e-22a1-4d9a-8e2e-b6a3f0a61f02",
		UserID: 1,
		Title:  "Standup",
		Start:  start,
		End:    start.Add(30 * time.Minute),
		Type:   domain.EventTypeCustom,
	}

	serviceMock := new(eventServiceMock)
	serviceMock.On("FetchSchedule", mock.Anything, uint64(1)).Return(domain.Schedule{
		Events:       []domain.CalendarEvent{event},
		TodaysEvents: []domain.CalendarEvent{event},
	}, nil).Once()

	router := newEventRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Events, 1)
	require.Len(t, got.TodaysEvents, 1)
	require.Empty(t, got.UpcomingEvents)
	require.Equal(t, "Standup", got.Events[0].Title)
	require.Equal(t, start.Format(time.RFC3339), got.Events[0].Start)
	serviceMock.AssertExpectations(t)
}

func TestEventHandler_FetchSchedule_Error(t *testing.T) {
	serviceMock := new(eventServiceMock)
	serviceMock.On("FetchSchedule", mock.Anything, uint64(1)).Return(domain.Schedule{}, errors.New("db is down")).Once()

	router := newEventRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	req.Header.Set("Accept-Language", translator.LanguageFr)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Échec de la récupération de l'agenda", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestEventHandler_CreateEvent_ConvertsDisplayTime(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

	serviceMock := new(eventServiceMock)
	serviceMock.On("AddEvent", mock.Anything, uint64(1), mock.MatchedBy(func(input domain.CreateEventInput) bool {
		return input.Title == "Client demo" &&
			input.Start.Equal(start) &&
			input.End.Equal(start.Add(90*time.Minute)) &&
			input.Type == domain.EventTypeCustom
	})).Return(domain.CalendarEvent{
		ID:     "c0a8e1a2-58be-44b0-a8d7-f7a47c5f36a9",
		UserID: 1,
		Title:  "Client demo",
		Start:  start,
		End:    start.Add(90 * time.Minute),
		Type:   domain.EventTypeCustom,
	}, nil).Once()

	router := newEventRouter(serviceMock)

	body := `{"title":"Client demo","date":"2024-06-10","start_time":"9:00 AM","duration_minutes":90}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.EventItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Client demo", got.Title)
	require.Equal(t, start.Format(time.RFC3339), got.Start)
	serviceMock.AssertExpectations(t)
}

func TestEventHandler_CreateEvent_InvalidTimeLabel(t *testing.T) {
	serviceMock := new(eventServiceMock)
	router := newEventRouter(serviceMock)

	body := `{"title":"Client demo","date":"2024-06-10","start_time":"13:00 PM"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid event payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "AddEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventHandler_UpdateEvent_NotFound(t *testing.T) {
	eventID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	serviceMock := new(eventServiceMock)
	serviceMock.On("UpdateEvent", mock.Anything, eventID, mock.Anything).Return(domain.CalendarEvent{}, domain.ErrEventNotFound).Once()

	router := newEventRouter(serviceMock)

	body := `{"title":"Renamed"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/events/"+eventID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Event not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestEventHandler_UpdateEvent_InvalidID(t *testing.T) {
	serviceMock := new(eventServiceMock)
	router := newEventRouter(serviceMock)

	body := `{"title":"Renamed"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/events/not-a-uuid", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid event id", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "UpdateEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventHandler_DeleteEvent_NoContent(t *testing.T) {
	eventID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	serviceMock := new(eventServiceMock)
	serviceMock.On("DeleteEvent", mock.Anything, eventID).Return(nil).Once()

	router := newEventRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
