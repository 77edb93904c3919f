package domain

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEventNotFound = errors.New("calendar event not found")

	ErrEmptyTitle          = errors.New("title must not be empty")
	ErrMissingDueDate      = errors.New("due date is required")
	ErrEndBeforeStart      = errors.New("event end precedes its start")
	ErrInvalidEventType    = errors.New("unknown event type")
	ErrInvalidTaskStatus   = errors.New("unknown task status")
	ErrInvalidTaskPriority = errors.New("unknown task priority")
)
