package domain

import (
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

type EventType string

const (
	EventTypeInvoice EventType = "invoice"
	EventTypeExpense EventType = "expense"
	EventTypeTask    EventType = "task"
	EventTypeCustom  EventType = "custom"
	EventTypeHoliday EventType = "holiday"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeInvoice, EventTypeExpense, EventTypeTask, EventTypeCustom, EventTypeHoliday:
		return true
	}
	return false
}

// CalendarEvent is a scheduled block on a user's calendar. Timestamps are
// naive local wall-clock time; End is never before Start. All-day events
// ignore the time of day and are matched against whole calendar days.
type CalendarEvent struct {
	ID          string
	UserID      uint64
	Title       string
	Description *string
	Start       time.Time
	End         time.Time
	Type        EventType
	AllDay      bool
	CreatedAt   time.Time
}

type CreateEventInput struct {
	Title       string
	Description *string
	Start       time.Time
	End         time.Time
	Type        EventType
	AllDay      bool
}

type UpdateEventInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Start          *time.Time
	End            *time.Time
	Type           *EventType
	AllDay         *bool
}

// Schedule is the derived view handed to the calendar surfaces. It is
// recomputed on every fetch and never stored.
type Schedule struct {
	Events         []CalendarEvent
	TodaysEvents   []CalendarEvent
	UpcomingEvents []CalendarEvent
}

// ValidateEventDraft checks a create input and reports every violation at once.
func ValidateEventDraft(input CreateEventInput) error {
	var errs *multierror.Error
	if strings.TrimSpace(input.Title) == "" {
		errs = multierror.Append(errs, ErrEmptyTitle)
	}
	if !input.Type.Valid() {
		errs = multierror.Append(errs, ErrInvalidEventType)
	}
	if input.End.Before(input.Start) {
		errs = multierror.Append(errs, ErrEndBeforeStart)
	}
	return errs.ErrorOrNil()
}
