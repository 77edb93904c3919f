package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/ports"
)

// upcomingWindowSize caps the lookahead list; it is a fixed window, not a
// paged query.
const upcomingWindowSize = 3

// EventService is the authoritative access path to a user's calendar events.
// Every fetch re-derives the "today" and "upcoming" views; nothing derived
// is ever stored. State only changes after the repository call succeeds, so
// a failed round-trip leaves nothing to roll back.
type EventService struct {
	eventRepository ports.EventRepository
	now             func() time.Time
}

func NewEventService(eventRepository ports.EventRepository) *EventService {
	return &EventService{
		eventRepository: eventRepository,
		now:             time.Now,
	}
}

// FetchSchedule loads the user's events ordered by start and partitions them
// into today's and upcoming views.
func (s *EventService) FetchSchedule(ctx context.Context, userID uint64) (domain.Schedule, error) {
	events, err := s.eventRepository.ListByUser(ctx, userID)
	if err != nil {
		return domain.Schedule{}, err
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	schedule := domain.Schedule{Events: events}
	for _, event := range events {
		if inTodayWindow(event, now, startOfDay, endOfDay) {
			schedule.TodaysEvents = append(schedule.TodaysEvents, event)
		}
	}
	schedule.UpcomingEvents = upcomingWindow(events, endOfDay)
	return schedule, nil
}

func (s *EventService) AddEvent(ctx context.Context, userID uint64, input domain.CreateEventInput) (domain.CalendarEvent, error) {
	if err := domain.ValidateEventDraft(input); err != nil {
		return domain.CalendarEvent{}, err
	}
	return s.eventRepository.Create(ctx, userID, input)
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (domain.CalendarEvent, error) {
	if input.Type != nil && !input.Type.Valid() {
		return domain.CalendarEvent{}, domain.ErrInvalidEventType
	}
	if input.Start != nil && input.End != nil && input.End.Before(*input.Start) {
		return domain.CalendarEvent{}, domain.ErrEndBeforeStart
	}
	return s.eventRepository.Update(ctx, id, input)
}

// DeleteEvent is idempotent: deleting an event that no longer exists is
// treated as success.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepository.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		return err
	}
	return nil
}

// inTodayWindow reports whether an event belongs in today's view. All-day
// events match when their interval overlaps the local calendar day; timed
// events match while in progress or when they still start later today.
func inTodayWindow(event domain.CalendarEvent, now, startOfDay, endOfDay time.Time) bool {
	if event.AllDay {
		return event.Start.Before(endOfDay) && !event.End.Before(startOfDay)
	}

	inProgress := !event.Start.After(now) && !event.End.Before(now)
	startsLaterToday := !event.Start.Before(now) && event.Start.Before(endOfDay)
	return inProgress || startsLaterToday
}

// upcomingWindow returns the soonest events starting at or after the end of
// today, ascending by start, capped at upcomingWindowSize.
func upcomingWindow(events []domain.CalendarEvent, endOfDay time.Time) []domain.CalendarEvent {
	var upcoming []domain.CalendarEvent
	for _, event := range events {
		if !event.Start.Before(endOfDay) {
			upcoming = append(upcoming, event)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})
	if len(upcoming) > upcomingWindowSize {
		upcoming = upcoming[:upcomingWindowSize]
	}
	return upcoming
}

var _ ports.EventService = (*EventService)(nil)
