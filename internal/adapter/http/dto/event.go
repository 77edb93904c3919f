package dto

type EventItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Type        string  `json:"type"`
	AllDay      bool    `json:"all_day"`
	CreatedAt   string  `json:"created_at"`
}

type ScheduleResponse struct {
	Events         []EventItem `json:"events"`
	TodaysEvents   []EventItem `json:"todays_events"`
	UpcomingEvents []EventItem `json:"upcoming_events"`
}

// CreateEventRequest carries the draft the calendar surfaces collect: a date
// plus a 12-hour start label and a duration, or an all-day flag with an
// optional multi-day end date. The server converts these into absolute
// timestamps before anything is stored.
type CreateEventRequest struct {
	Title           string  `json:"title" binding:"required,max=255"`
	Description     *string `json:"description" binding:"omitempty,max=65535"`
	Type            *string `json:"type" binding:"omitempty,oneof=invoice expense task custom holiday"`
	Date            string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime       *string `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,gt=0"`
	AllDay          bool    `json:"all_day"`
	EndDate         *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateEventRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=255"`
	Description     *string `json:"description" binding:"omitempty,max=65535"`
	Type            *string `json:"type" binding:"omitempty,oneof=invoice expense task custom holiday"`
	Date            *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime       *string `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,gt=0"`
	AllDay          *bool   `json:"all_day"`
	EndDate         *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}
