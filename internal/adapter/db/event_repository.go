package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/ports"
)

const listEventsQuery = "SELECT * FROM calendar_events WHERE user_id = ? ORDER BY `start` ASC;"

const getEventQuery = `
SELECT *
FROM calendar_events
WHERE id = ?;
`

const insertEventQuery = "INSERT INTO calendar_events (id, user_id, title, description, `start`, `end`, type, all_day) VALUES (?, ?, ?, ?, ?, ?, ?, ?);"

type EventRepository struct {
	db *sqlx.DB
}

type eventRow struct {
	ID          string         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Start       time.Time      `db:"start"`
	End         time.Time      `db:"end"`
	Type        string         `db:"type"`
	AllDay      bool           `db:"all_day"`
	CreatedAt   time.Time      `db:"created_at"`
}

var _ ports.EventRepository = (*EventRepository)(nil)

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByUser(ctx context.Context, userID uint64) ([]domain.CalendarEvent, error) {
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, listEventsQuery, userID); err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, mapEventRowToDomainEvent(row))
	}

	return events, nil
}

func (r *EventRepository) Get(ctx context.Context, id string) (domain.CalendarEvent, error) {
	var row eventRow
	if err := r.db.GetContext(ctx, &row, getEventQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CalendarEvent{}, domain.ErrEventNotFound
		}
		return domain.CalendarEvent{}, err
	}

	return mapEventRowToDomainEvent(row), nil
}

func (r *EventRepository) Create(ctx context.Context, userID uint64, input domain.CreateEventInput) (domain.CalendarEvent, error) {
	id := uuid.NewString()

	_, err := r.db.ExecContext(ctx, insertEventQuery,
		id,
		userID,
		input.Title,
		input.Description,
		input.Start,
		input.End,
		string(input.Type),
		input.AllDay,
	)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	return r.Get(ctx, id)
}

func (r *EventRepository) Update(ctx context.Context, id string, input domain.UpdateEventInput) (domain.CalendarEvent, error) {
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
	if input.Start != nil {
		sets = append(sets, "`start` = ?")
		args = append(args, *input.Start)
	}
	if input.End != nil {
		sets = append(sets, "`end` = ?")
		args = append(args, *input.End)
	}
	if input.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, string(*input.Type))
	}
	if input.AllDay != nil {
		sets = append(sets, "all_day = ?")
		args = append(args, *input.AllDay)
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	query := fmt.Sprintf("UPDATE calendar_events SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.CalendarEvent{}, err
	}

	return r.Get(ctx, id)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM calendar_events WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func mapEventRowToDomainEvent(row eventRow) domain.CalendarEvent {
	event := domain.CalendarEvent{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Start:     row.Start,
		End:       row.End,
		Type:      domain.EventType(row.Type),
		AllDay:    row.AllDay,
		CreatedAt: row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		event.Description = &value
	}

	return event
}
