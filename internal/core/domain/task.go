package domain

import (
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// Task is a to-do item owned by a user. While the task is pending it is
// mirrored by a calendar event; CalendarID is the back-reference to that
// event and is nil in every other status.
type Task struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description *string
	DueDate     time.Time
	Status      TaskStatus
	Priority    TaskPriority
	CustomerID  *uint64
	CalendarID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     time.Time
	Status      TaskStatus
	Priority    TaskPriority
	CustomerID  *uint64
}

// UpdateTaskInput carries a partial update. Pointer fields are only applied
// when non-nil; the Set flags distinguish "set to null" from "not present"
// for nullable columns.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	DueDate        *time.Time
	Status         *TaskStatus
	Priority       *TaskPriority
	CustomerID     *uint64
	CustomerIDSet  bool
}

// ValidateTaskDraft checks a create input and reports every violation at once.
func ValidateTaskDraft(input CreateTaskInput) error {
	var errs *multierror.Error
	if strings.TrimSpace(input.Title) == "" {
		errs = multierror.Append(errs, ErrEmptyTitle)
	}
	if input.DueDate.IsZero() {
		errs = multierror.Append(errs, ErrMissingDueDate)
	}
	if input.Status != "" && !input.Status.Valid() {
		errs = multierror.Append(errs, ErrInvalidTaskStatus)
	}
	if input.Priority != "" && !input.Priority.Valid() {
		errs = multierror.Append(errs, ErrInvalidTaskPriority)
	}
	return errs.ErrorOrNil()
}
