package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// GetByID получает счёт по ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	query := `
		SELECT invoice_id, unit_id, period_start, period_end, status, condo_fee, carpark_fee, total_amount
		FROM invoices
		WHERE invoice_id = $1
	`

	var invoice model.Invoice
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.UnitID,
		&invoice.PeriodStart,
		&invoice.PeriodEnd,
		&invoice.Status,
		&invoice.CondoFee,
		&invoice.CarparkFee,
		&invoice.TotalAmount,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}

	return &invoice, nil
}

// SetStatusTx перезаписывает статус счёта внутри переданной транзакции.
// Статус счёта — производное поле, поэтому запись всегда идёт в одной
// транзакции с записью платежа, вызывает его только платёжный workflow.
func (r *InvoiceRepository) SetStatusTx(ctx context.Context, tx pgx.Tx, invoiceID int64, status model.InvoiceStatus) (*model.Invoice, error) {
	query := `
		UPDATE invoices
		SET status = $1
		WHERE invoice_id = $2
		RETURNING invoice_id, unit_id, period_start, period_end, status, condo_fee, carpark_fee, total_amount
	`

	var invoice model.Invoice
	err := tx.QueryRow(ctx, query, status, invoiceID).Scan(
		&invoice.ID,
		&invoice.UnitID,
		&invoice.PeriodStart,
		&invoice.PeriodEnd,
		&invoice.Status,
		&invoice.CondoFee,
		&invoice.CarparkFee,
		&invoice.TotalAmount,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("set invoice status: %w", err)
	}

	return &invoice, nil
}

// ListForUnit возвращает счета юнита с последним платежом по каждому.
// Последний платёж = максимальный paid_at; при одинаковом paid_at
// выигрывает больший payment_id (явный tie-break).
func (r *InvoiceRepository) ListForUnit(ctx context.Context, unitID int64) ([]*model.InvoiceWithPayment, error) {
	query := `
		SELECT
			i.invoice_id,
			i.unit_id,
			u.unit_no,
			i.period_start,
			i.period_end,
			i.status,
			i.condo_fee,
			i.carpark_fee,
			i.total_amount,
			p.payment_id,
			p.method,
			p.reference_no,
			p.amount,
			p.paid_at,
			p.status
		FROM invoices i
		JOIN units u ON u.unit_id = i.unit_id
		LEFT JOIN LATERAL (
			SELECT payment_id, method, reference_no, amount, paid_at, status
			FROM payments p2
			WHERE p2.invoice_id = i.invoice_id
			ORDER BY p2.paid_at DESC, p2.payment_id DESC
			LIMIT 1
		) p ON true
		WHERE i.unit_id = $1
		ORDER BY i.period_start DESC
	`

	rows, err := r.pool.Query(ctx, query, unitID)
	if err != nil {
		return nil, fmt.Errorf("list invoices for unit: %w", err)
	}
	defer rows.Close()

	var invoices []*model.InvoiceWithPayment
	for rows.Next() {
		var (
			inv       model.InvoiceWithPayment
			paymentID *int64
			method    *string
			reference *string
			amount    *int64
			paidAt    *time.Time
			status    *model.PaymentStatus
		)

		err := rows.Scan(
			&inv.ID,
			&inv.UnitID,
			&inv.UnitNumber,
			&inv.PeriodStart,
			&inv.PeriodEnd,
			&inv.Status,
			&inv.CondoFee,
			&inv.CarparkFee,
			&inv.TotalAmount,
			&paymentID,
			&method,
			&reference,
			&amount,
			&paidAt,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}

		// LEFT JOIN: платежей по счёту может не быть вовсе
		if paymentID != nil {
			inv.Latest = &model.Payment{
				ID:          *paymentID,
				InvoiceID:   inv.ID,
				Method:      *method,
				ReferenceNo: reference,
				Amount:      *amount,
				PaidAt:      *paidAt,
				Status:      *status,
			}
		}

		invoices = append(invoices, &inv)
	}

	return invoices, nil
}
