package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/dto"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
	"github.com/CxTrack/PostBuild-CRM-sub002/pkg/timefmt"
)

var ErrInvalidEventPayload = errors.New("invalid event payload")

// defaultEventMinutes is the block length used when a timed draft does not
// name a duration.
const defaultEventMinutes = 60

// BuildCreateEventInput turns a calendar draft into a domain input. Timed
// drafts carry a date, a 12-hour start label and a duration; all-day drafts
// carry a date and an optional later end date. Either way the display values
// are converted to absolute local timestamps here and nowhere else.
func BuildCreateEventInput(req dto.CreateEventRequest) (domain.CreateEventInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateEventInput{}, ErrInvalidEventPayload
	}

	eventType := domain.EventTypeCustom
	if req.Type != nil {
		eventType = domain.EventType(*req.Type)
	}

	start, end, err := buildEventInterval(req.Date, req.StartTime, req.DurationMinutes, req.AllDay, req.EndDate)
	if err != nil {
		return domain.CreateEventInput{}, err
	}

	return domain.CreateEventInput{
		Title:       title,
		Description: req.Description,
		Start:       start,
		End:         end,
		Type:        eventType,
		AllDay:      req.AllDay,
	}, nil
}

func BuildUpdateEventInput(req dto.UpdateEventRequest, raw map[string]json.RawMessage) (domain.UpdateEventInput, error) {
	if !hasEventUpdateFields(raw) {
		return domain.UpdateEventInput{}, ErrInvalidEventPayload
	}

	var input domain.UpdateEventInput

	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateEventInput{}, ErrInvalidEventPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateEventInput{}, ErrInvalidEventPayload
		}
		input.Title = &value
	}

	input.DescriptionSet = hasJSONField(raw, "description")
	if input.DescriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateEventInput{}, ErrInvalidEventPayload
	}
	input.Description = req.Description

	if hasJSONField(raw, "type") && req.Type == nil {
		return domain.UpdateEventInput{}, ErrInvalidEventPayload
	}
	if req.Type != nil {
		value := domain.EventType(*req.Type)
		input.Type = &value
	}

	if hasJSONField(raw, "all_day") && req.AllDay == nil {
		return domain.UpdateEventInput{}, ErrInvalidEventPayload
	}
	input.AllDay = req.AllDay

	// Any timestamp-shaped field in the patch forces a full re-serialization
	// of the interval from display values.
	timePatch := hasJSONField(raw, "date") ||
		hasJSONField(raw, "start_time") ||
		hasJSONField(raw, "duration_minutes") ||
		hasJSONField(raw, "end_date")
	if timePatch {
		if req.Date == nil {
			return domain.UpdateEventInput{}, ErrInvalidEventPayload
		}
		allDay := req.AllDay != nil && *req.AllDay
		start, end, err := buildEventInterval(*req.Date, req.StartTime, req.DurationMinutes, allDay, req.EndDate)
		if err != nil {
			return domain.UpdateEventInput{}, err
		}
		input.Start = &start
		input.End = &end
	}

	return input, nil
}

func buildEventInterval(date string, startTime *string, durationMinutes *int, allDay bool, endDate *string) (start, end time.Time, err error) {
	if allDay {
		start, err = timefmt.CombineDateAndTime(date, 0, 0)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidEventPayload
		}
		lastDay := date
		if endDate != nil {
			lastDay = *endDate
		}
		end, err = timefmt.CombineDateAndTime(lastDay, 23, 59)
		if err != nil || end.Before(start) {
			return time.Time{}, time.Time{}, ErrInvalidEventPayload
		}
		return start, end, nil
	}

	if startTime == nil {
		return time.Time{}, time.Time{}, ErrInvalidEventPayload
	}
	hour, minute, err := timefmt.To24Hour(*startTime)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidEventPayload
	}
	start, err = timefmt.CombineDateAndTime(date, hour, minute)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidEventPayload
	}

	duration := defaultEventMinutes
	if durationMinutes != nil {
		duration = *durationMinutes
	}
	return start, timefmt.AddMinutes(start, duration), nil
}

func hasEventUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "type") ||
		hasJSONField(raw, "all_day") ||
		hasJSONField(raw, "date") ||
		hasJSONField(raw, "start_time") ||
		hasJSONField(raw, "duration_minutes") ||
		hasJSONField(raw, "end_date")
}
