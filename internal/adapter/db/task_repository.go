package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/ports"
)

// ENUM columns sort by index, not value; the cast keeps the lexicographic
// order the list contract promises (pending first under DESC).
const listTasksQuery = `
SELECT *
FROM tasks
WHERE user_id = ?
ORDER BY CAST(status AS CHAR) DESC, due_date ASC;
`

const getTaskQuery = `
SELECT *
FROM tasks
WHERE id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, due_date, status, priority, customer_id)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	DueDate     time.Time      `db:"due_date"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	CustomerID  sql.NullInt64  `db:"customer_id"`
	CalendarID  sql.NullString `db:"calendar_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, userID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Get(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		userID,
		input.Title,
		input.Description,
		input.DueDate,
		string(input.Status),
		string(input.Priority),
		input.CustomerID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.Get(ctx, uint64(id))
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, input.Description)
	}
	if input.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *input.DueDate)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.CustomerIDSet {
		sets = append(sets, "customer_id = ?")
		args = append(args, input.CustomerID)
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	return r.Get(ctx, id)
}

func (r *TaskRepository) SetCalendarID(ctx context.Context, id uint64, calendarID *string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET calendar_id = ? WHERE id = ?", calendarID, id)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		DueDate:   row.DueDate,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.CustomerID.Valid {
		value := uint64(row.CustomerID.Int64)
		task.CustomerID = &value
	}

	if row.CalendarID.Valid {
		value := row.CalendarID.String
		task.CalendarID = &value
	}

	return task
}
