package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSlotCapacity слот уже заполнен до лимита вместимости объекта
var ErrSlotCapacity = errors.New("slot is at capacity")

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Commit атомарно проверяет лимит и создаёт бронь для ключа (объект, дата, слот).
// Проверка и вставка идут в одной транзакции: охраняемый UPDATE счётчика берёт
// блокировку строки ключа, поэтому конкурирующие Commit по одному ключу
// сериализуются, а брони по разным ключам друг друга не блокируют.
func (r *BookingRepository) Commit(ctx context.Context, booking *model.Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Создаём строку счётчика занятости для ключа, если её ещё нет
	_, err = tx.Exec(ctx, `
		INSERT INTO slot_occupancy (facility_id, booking_date, time_slot, booked)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (facility_id, booking_date, time_slot) DO NOTHING
	`, booking.FacilityID, booking.Date, booking.Slot)
	if err != nil {
		return fmt.Errorf("ensure occupancy row: %w", err)
	}

	// Инкремент охраняется лимитом вместимости: 0 затронутых строк = слот полон
	tag, err := tx.Exec(ctx, `
		UPDATE slot_occupancy o
		SET booked = o.booked + 1
		FROM facilities f
		WHERE f.facility_id = o.facility_id
		  AND o.facility_id = $1
		  AND o.booking_date = $2
		  AND o.time_slot = $3
		  AND o.booked < f.capacity
	`, booking.FacilityID, booking.Date, booking.Slot)
	if err != nil {
		return fmt.Errorf("increment occupancy: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSlotCapacity
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO facility_bookings
			(facility_id, booking_date, time_slot, code, resident_name, unit_number, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`,
		booking.FacilityID,
		booking.Date,
		booking.Slot,
		booking.Code,
		booking.ResidentName,
		booking.UnitNumber,
		booking.ContactNumber,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// CountForSlot считает закоммиченные брони по ключу
func (r *BookingRepository) CountForSlot(ctx context.Context, facilityID int64, date time.Time, slot string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM facility_bookings
		WHERE facility_id = $1 AND booking_date = $2 AND time_slot = $3
	`

	var count int
	err := r.pool.QueryRow(ctx, query, facilityID, date, slot).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings for slot: %w", err)
	}

	return count, nil
}

// ListOccupancy возвращает занятость слотов объекта на дату
func (r *BookingRepository) ListOccupancy(ctx context.Context, facilityID int64, date time.Time) ([]*model.SlotOccupancy, error) {
	query := `
		SELECT time_slot, COUNT(*) AS booked_count
		FROM facility_bookings
		WHERE facility_id = $1 AND booking_date = $2
		GROUP BY time_slot
		ORDER BY time_slot
	`

	rows, err := r.pool.Query(ctx, query, facilityID, date)
	if err != nil {
		return nil, fmt.Errorf("list slot occupancy: %w", err)
	}
	defer rows.Close()

	var occupancy []*model.SlotOccupancy
	for rows.Next() {
		var o model.SlotOccupancy
		if err := rows.Scan(&o.Slot, &o.Booked); err != nil {
			return nil, fmt.Errorf("scan slot occupancy: %w", err)
		}
		occupancy = append(occupancy, &o)
	}

	return occupancy, nil
}

// ListRecent возвращает последние брони для админки (с названиями объектов)
func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]*model.AdminBooking, error) {
	query := `
		SELECT
			fb.id,
			f.name AS facility_name,
			fb.resident_name,
			fb.unit_number,
			fb.contact_number,
			fb.booking_date,
			fb.time_slot,
			fb.created_at
		FROM facility_bookings fb
		JOIN facilities f ON fb.facility_id = f.facility_id
		ORDER BY fb.created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.AdminBooking
	for rows.Next() {
		var b model.AdminBooking
		err := rows.Scan(
			&b.ID,
			&b.FacilityName,
			&b.ResidentName,
			&b.UnitNumber,
			&b.ContactNumber,
			&b.Date,
			&b.Slot,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}
