package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FacilityRepository struct {
	pool *pgxpool.Pool
}

func NewFacilityRepository(pool *pgxpool.Pool) *FacilityRepository {
	return &FacilityRepository{pool: pool}
}

// GetByID получает объект инфраструктуры по ID
func (r *FacilityRepository) GetByID(ctx context.Context, id int64) (*model.Facility, error) {
	query := `
		SELECT facility_id, name, description, capacity, open_time, close_time, image_url, created_at
		FROM facilities
		WHERE facility_id = $1
	`

	var facility model.Facility
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&facility.ID,
		&facility.Name,
		&facility.Description,
		&facility.Capacity,
		&facility.OpenTime,
		&facility.CloseTime,
		&facility.ImageURL,
		&facility.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get facility by id: %w", err)
	}

	return &facility, nil
}

// List возвращает все объекты инфраструктуры
func (r *FacilityRepository) List(ctx context.Context) ([]*model.Facility, error) {
	query := `
		SELECT facility_id, name, description, capacity, open_time, close_time, image_url, created_at
		FROM facilities
		ORDER BY facility_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var facilities []*model.Facility
	for rows.Next() {
		var facility model.Facility
		err := rows.Scan(
			&facility.ID,
			&facility.Name,
			&facility.Description,
			&facility.Capacity,
			&facility.OpenTime,
			&facility.CloseTime,
			&facility.ImageURL,
			&facility.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		facilities = append(facilities, &facility)
	}

	return facilities, nil
}
