package service

import (
	"context"
	"errors"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/ports"
	"github.com/CxTrack/PostBuild-CRM-sub002/pkg/timefmt"
)

// mirroredEventMinutes is the default block reserved on the calendar for a
// pending task that has no explicit schedule.
const mirroredEventMinutes = 30

// TaskService owns task records and keeps each task's mirrored calendar
// event in step with its status: the event exists exactly while the task is
// pending. The task row and the event live in separate tables and are
// written in separate round-trips; there is no transaction spanning both.
type TaskService struct {
	taskRepository  ports.TaskRepository
	eventRepository ports.EventRepository
}

func NewTaskService(taskRepository ports.TaskRepository, eventRepository ports.EventRepository) *TaskService {
	return &TaskService{
		taskRepository:  taskRepository,
		eventRepository: eventRepository,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.Get(ctx, id)
}

// CreateTask persists the task first and, when it lands in pending, creates
// the mirrored event itself and stores the back-reference. Callers never
// pre-create calendar events.
func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	if err := domain.ValidateTaskDraft(input); err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.Create(ctx, userID, input)
	if err != nil {
		return domain.Task{}, err
	}

	if task.Status == domain.TaskStatusPending {
		return s.attachMirror(ctx, task)
	}
	return task, nil
}

// UpdateTask applies a partial field update. The mirrored event is only
// touched when the patch carries a status change.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, domain.ErrInvalidTaskStatus
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return domain.Task{}, domain.ErrInvalidTaskPriority
	}

	task, err := s.taskRepository.Update(ctx, id, input)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Status != nil {
		return s.syncMirror(ctx, task)
	}
	return task, nil
}

// UpdateTaskStatus is the sole state-machine entry point. After it returns
// without error, the task has a mirrored event exactly when it is pending.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidTaskStatus
	}

	task, err := s.taskRepository.Update(ctx, id, domain.UpdateTaskInput{Status: &status})
	if err != nil {
		return domain.Task{}, err
	}
	return s.syncMirror(ctx, task)
}

// DeleteTask removes the mirrored event first, then the task row. A failing
// event delete aborts the whole operation so the row cannot outlive a
// dangling back-reference; a task that is already gone is not an error.
func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	task, err := s.taskRepository.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil
		}
		return err
	}

	if task.CalendarID != nil {
		if err := s.eventRepository.Delete(ctx, *task.CalendarID); err != nil && !errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
	}
	return s.taskRepository.Delete(ctx, id)
}

// syncMirror restores the invariant calendar_id != nil <=> status == pending.
func (s *TaskService) syncMirror(ctx context.Context, task domain.Task) (domain.Task, error) {
	switch {
	case task.Status == domain.TaskStatusPending && task.CalendarID == nil:
		return s.attachMirror(ctx, task)
	case task.Status != domain.TaskStatusPending && task.CalendarID != nil:
		return s.detachMirror(ctx, task)
	}
	return task, nil
}

func (s *TaskService) attachMirror(ctx context.Context, task domain.Task) (domain.Task, error) {
	start := task.DueDate
	event, err := s.eventRepository.Create(ctx, task.UserID, domain.CreateEventInput{
		Title: task.Title,
		Start: start,
		End:   timefmt.AddMinutes(start, mirroredEventMinutes),
		Type:  domain.EventTypeTask,
	})
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepository.SetCalendarID(ctx, task.ID, &event.ID); err != nil {
		return domain.Task{}, err
	}
	task.CalendarID = &event.ID
	return task, nil
}

func (s *TaskService) detachMirror(ctx context.Context, task domain.Task) (domain.Task, error) {
	// A mirror that is already gone is fine; the delete is idempotent.
	if err := s.eventRepository.Delete(ctx, *task.CalendarID); err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		return domain.Task{}, err
	}

	if err := s.taskRepository.SetCalendarID(ctx, task.ID, nil); err != nil {
		return domain.Task{}, err
	}
	task.CalendarID = nil
	return task, nil
}

var _ ports.TaskService = (*TaskService)(nil)
