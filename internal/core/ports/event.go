package ports

import (
	"context"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
)

type EventRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]domain.CalendarEvent, error)
	Get(ctx context.Context, id string) (domain.CalendarEvent, error)
	Create(ctx context.Context, userID uint64, input domain.CreateEventInput) (domain.CalendarEvent, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (domain.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

type EventService interface {
	FetchSchedule(ctx context.Context, userID uint64) (domain.Schedule, error)
	AddEvent(ctx context.Context, userID uint64, input domain.CreateEventInput) (domain.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}
