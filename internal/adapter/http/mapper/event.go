package mapper

import (
	"time"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/dto"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
)

func ToEventItems(events []domain.CalendarEvent) []dto.EventItem {
	items := make([]dto.EventItem, 0, len(events))
	for _, event := range events {
		items = append(items, ToEventItem(event))
	}
	return items
}

func ToEventItem(event domain.CalendarEvent) dto.EventItem {
	item := dto.EventItem{
		ID:        event.ID,
		Title:     event.Title,
		Start:     event.Start.Format(time.RFC3339),
		End:       event.End.Format(time.RFC3339),
		Type:      string(event.Type),
		AllDay:    event.AllDay,
		CreatedAt: event.CreatedAt.Format(time.RFC3339),
	}

	if event.Description != nil {
		value := *event.Description
		item.Description = &value
	}

	return item
}

func ToScheduleResponse(schedule domain.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		Events:         ToEventItems(schedule.Events),
		TodaysEvents:   ToEventItems(schedule.TodaysEvents),
		UpcomingEvents: ToEventItems(schedule.UpcomingEvents),
	}
}
