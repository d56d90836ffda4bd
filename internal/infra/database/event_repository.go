package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{DB: db}
}

const eventColumns = `id, name, slug, image_url, event_datetime, location, category, COALESCE(cta_link, '#')`

func (r *EventRepository) FindAll(ctx context.Context) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_datetime ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) FindByCategory(ctx context.Context, category string) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE category = $1 ORDER BY event_datetime ASC`

	rows, err := r.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) FindUpcoming(ctx context.Context, after time.Time) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_datetime >= $1 ORDER BY event_datetime ASC`

	rows, err := r.DB.QueryContext(ctx, query, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]entity.Event, error) {
	events := []entity.Event{}
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Slug,
			&e.Image,
			&e.EventDatetime,
			&e.Location,
			&e.Category,
			&e.CTALink,
		); err != nil {
			return nil, err
		}
		e.Date = e.FormatDate()
		events = append(events, e)
	}

	return events, rows.Err()
}
