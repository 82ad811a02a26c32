package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UnitRepository struct {
	pool *pgxpool.Pool
}

func NewUnitRepository(pool *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{pool: pool}
}

// GetByNumber получает юнит по номеру квартиры (например "101")
func (r *UnitRepository) GetByNumber(ctx context.Context, number string) (*model.Unit, error) {
	query := `
		SELECT unit_id, unit_no
		FROM units
		WHERE unit_no = $1
	`

	var unit model.Unit
	err := r.pool.QueryRow(ctx, query, number).Scan(&unit.ID, &unit.Number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit by number: %w", err)
	}

	return &unit, nil
}
