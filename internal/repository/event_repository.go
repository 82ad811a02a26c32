package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// Create создаёт новое мероприятие
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `
		INSERT INTO events (title, event_date, event_time, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING event_id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		event.Title,
		event.Date,
		event.Time,
		event.Description,
		event.ImageURL,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

// Update обновляет мероприятие целиком
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	query := `
		UPDATE events
		SET title = $1, event_date = $2, event_time = $3, description = $4, image_url = $5
		WHERE event_id = $6
	`

	result, err := r.pool.Exec(
		ctx, query,
		event.Title,
		event.Date,
		event.Time,
		event.Description,
		event.ImageURL,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// GetByID получает мероприятие по ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `
		SELECT event_id, title, event_date, event_time, description, image_url, created_at
		FROM events
		WHERE event_id = $1
	`

	var event model.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Date,
		&event.Time,
		&event.Description,
		&event.ImageURL,
		&event.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}

	return &event, nil
}

// ListUpcoming возвращает мероприятия начиная с сегодняшней даты
func (r *EventRepository) ListUpcoming(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT event_id, title, event_date, event_time, description, image_url, created_at
		FROM events
		WHERE event_date >= CURRENT_DATE
		ORDER BY event_date ASC, event_time ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		var event model.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Date,
			&event.Time,
			&event.Description,
			&event.ImageURL,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, &event)
	}

	return events, nil
}
