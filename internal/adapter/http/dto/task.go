package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	CustomerID  *uint64 `json:"customer_id,omitempty"`
	CalendarID  *string `json:"calendar_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     string  `json:"due_date" binding:"required,datetime=2006-01-02"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	CustomerID  *uint64 `json:"customer_id" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	CustomerID  *uint64 `json:"customer_id" binding:"omitempty,gt=0"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}
