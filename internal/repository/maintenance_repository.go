package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaintenanceRepository struct {
	pool *pgxpool.Pool
}

func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{pool: pool}
}

// Create создаёт новую заявку на обслуживание
func (r *MaintenanceRepository) Create(ctx context.Context, request *model.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests
			(unit_id, unit_label, requested_by, category, priority, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING request_id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		request.UnitID,
		request.UnitLabel,
		request.RequestedBy,
		request.Category,
		request.Priority,
		request.Status,
		request.Description,
	).Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		return fmt.Errorf("create maintenance request: %w", err)
	}

	return nil
}

// ListRecent возвращает последние заявки, новые сверху
func (r *MaintenanceRepository) ListRecent(ctx context.Context, limit int) ([]*model.MaintenanceRequest, error) {
	query := `
		SELECT request_id, unit_id, unit_label, requested_by, category, priority, status, description, created_at
		FROM maintenance_requests
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.MaintenanceRequest
	for rows.Next() {
		var request model.MaintenanceRequest
		err := rows.Scan(
			&request.ID,
			&request.UnitID,
			&request.UnitLabel,
			&request.RequestedBy,
			&request.Category,
			&request.Priority,
			&request.Status,
			&request.Description,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance request: %w", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}

// UpdateStatus обновляет статус заявки
func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id int64, status model.MaintenanceStatus) error {
	query := `
		UPDATE maintenance_requests
		SET status = $1
		WHERE request_id = $2
	`

	result, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update maintenance status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
