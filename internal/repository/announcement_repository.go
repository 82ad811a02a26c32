package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

// List возвращает все объявления, новые сверху
func (r *AnnouncementRepository) List(ctx context.Context) ([]*model.Announcement, error) {
	query := `
		SELECT announcement_id, title, body, created_at
		FROM announcements
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		announcements = append(announcements, &a)
	}

	return announcements, nil
}
