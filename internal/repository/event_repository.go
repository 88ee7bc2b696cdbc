package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pokecreche/pokecreche-api/internal/models"
)

// EventRepository persists calendar events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns events with dates inside the filter's inclusive range,
// optionally restricted to one teacher, ordered by date ascending.
func (r *EventRepository) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	query := `SELECT id, teacher_id, to_char(date, 'YYYY-MM-DD') AS date, title, color
FROM calendario_events WHERE date BETWEEN $1 AND $2`
	args := []interface{}{filter.StartDate, filter.EndDate}
	if filter.TeacherID != "" {
		query += fmt.Sprintf(" AND teacher_id = $%d", len(args)+1)
		args = append(args, filter.TeacherID)
	}
	query += " ORDER BY date ASC"

	events := []models.CalendarEvent{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Upsert inserts an event, overwriting title and color when the
// (teacher_id, date) slot is already taken. The returned id is the row
// that now occupies the slot, whether freshly inserted or overwritten.
func (r *EventRepository) Upsert(ctx context.Context, event *models.CalendarEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	const query = `INSERT INTO calendario_events (id, teacher_id, date, title, color, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (teacher_id, date) DO UPDATE SET title = EXCLUDED.title, color = EXCLUDED.color, updated_at = EXCLUDED.updated_at
RETURNING id`
	if err := r.db.GetContext(ctx, &event.ID, query, event.ID, event.TeacherID, event.Date, event.Title, event.Color, now); err != nil {
		return fmt.Errorf("upsert event: %w", err)
	}
	return nil
}

// Update replaces date, title, color and teacher attribution by primary
// id. An unknown id yields zero affected rows, not an error.
func (r *EventRepository) Update(ctx context.Context, event *models.CalendarEvent) (int64, error) {
	const query = `UPDATE calendario_events SET date = $1, title = $2, color = $3, teacher_id = $4, updated_at = $5 WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query, event.Date, event.Title, event.Color, event.TeacherID, time.Now().UTC(), event.ID)
	if err != nil {
		return 0, fmt.Errorf("update event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update event rows: %w", err)
	}
	return affected, nil
}

// Delete removes an event by id, returning the affected row count.
func (r *EventRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM calendario_events WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete event rows: %w", err)
	}
	return affected, nil
}
