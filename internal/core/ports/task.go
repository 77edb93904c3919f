package ports

import (
	"context"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, userID uint64) ([]domain.Task, error)
	Get(ctx context.Context, id uint64) (domain.Task, error)
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	SetCalendarID(ctx context.Context, id uint64, calendarID *string) error
	Delete(ctx context.Context, id uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}
