package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/dto"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/mapper"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/middleware"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/validation"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/ports"
	"github.com/CxTrack/PostBuild-CRM-sub002/pkg/apierrors"
)

type EventHandler struct {
	eventService ports.EventService
}

func NewEventHandler(eventService ports.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// FetchSchedule returns every event for the caller's scope together with the
// derived today's and upcoming views.
func (h *EventHandler) FetchSchedule(c *gin.Context) {
	lang := middleware.GetLang(c)

	schedule, err := h.eventService.FetchSchedule(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to fetch schedule", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFetchSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleResponse(schedule))
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEventPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateEventInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEventPayload, lang),
		)
		return
	}

	event, err := h.eventService.AddEvent(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		if isInvalidDraft(err) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEventPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create event", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateEvent, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToEventItem(event))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	lang := middleware.GetLang(c)

	eventID, ok := parseEventID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEventPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateEventInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEventPayload, lang),
		)
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgEventNotFound, lang),
			)
		case isInvalidDraft(err):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEventPayload, lang),
			)
		default:
			zap.L().Error("failed to update event", zap.String("event_id", eventID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateEvent, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToEventItem(event))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	lang := middleware.GetLang(c)

	eventID, ok := parseEventID(c, lang)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		zap.L().Error("failed to delete event", zap.String("event_id", eventID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteEvent, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseEventID(c *gin.Context, lang string) (string, bool) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEventID, lang),
		)
		return "", false
	}
	return eventID, true
}
