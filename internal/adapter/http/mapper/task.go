package mapper

import (
	"time"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/dto"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		DueDate:   task.DueDate.Format("2006-01-02"),
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.CustomerID != nil {
		value := *task.CustomerID
		item.CustomerID = &value
	}

	if task.CalendarID != nil {
		value := *task.CalendarID
		item.CalendarID = &value
	}

	return item
}
