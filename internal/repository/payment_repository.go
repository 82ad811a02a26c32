package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	pool        *pgxpool.Pool
	invoiceRepo *InvoiceRepository
}

func NewPaymentRepository(pool *pgxpool.Pool, invoiceRepo *InvoiceRepository) *PaymentRepository {
	return &PaymentRepository{pool: pool, invoiceRepo: invoiceRepo}
}

// RecordSubmission вставляет платёж со статусом Pending и переводит счёт
// в Pending. Обе записи идут в одной транзакции: либо обе, либо ни одной.
func (r *PaymentRepository) RecordSubmission(ctx context.Context, payment *model.Payment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO payments (invoice_id, method, reference_no, amount, paid_at, status)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING payment_id, paid_at
	`,
		payment.InvoiceID,
		payment.Method,
		payment.ReferenceNo,
		payment.Amount,
		model.PaymentStatusPending,
	).Scan(&payment.ID, &payment.PaidAt)

	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	payment.Status = model.PaymentStatusPending

	invoice, err := r.invoiceRepo.SetStatusTx(ctx, tx, payment.InvoiceID, model.InvoiceStatusPending)
	if err != nil {
		return fmt.Errorf("mark invoice pending: %w", err)
	}
	if invoice == nil {
		// Счёт исчез между проверкой и записью — откатываем платёж целиком
		return pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// ApplyDecision проставляет решение по платежу и соответствующий статус
// его счёта в одной транзакции. Повторное решение по уже решённому платежу
// допустимо и просто перезаписывает оба статуса.
func (r *PaymentRepository) ApplyDecision(ctx context.Context, paymentID int64, decision model.PaymentStatus, invoiceStatus model.InvoiceStatus) (*model.Invoice, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var invoiceID int64
	err = tx.QueryRow(ctx, `
		UPDATE payments
		SET status = $1
		WHERE payment_id = $2
		RETURNING invoice_id
	`, decision, paymentID).Scan(&invoiceID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	invoice, err := r.invoiceRepo.SetStatusTx(ctx, tx, invoiceID, invoiceStatus)
	if err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	if invoice == nil {
		return nil, fmt.Errorf("invoice %d not found for payment %d", invoiceID, paymentID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return invoice, nil
}

// GetByID получает платёж по ID
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	query := `
		SELECT payment_id, invoice_id, method, reference_no, amount, paid_at, status
		FROM payments
		WHERE payment_id = $1
	`

	var payment model.Payment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.InvoiceID,
		&payment.Method,
		&payment.ReferenceNo,
		&payment.Amount,
		&payment.PaidAt,
		&payment.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by id: %w", err)
	}

	return &payment, nil
}

// ListAll возвращает все платежи со счетами и юнитами, новые сверху
func (r *PaymentRepository) ListAll(ctx context.Context) ([]*model.AdminPayment, error) {
	query := `
		SELECT
			p.payment_id,
			p.invoice_id,
			p.method,
			p.reference_no,
			p.amount,
			p.paid_at,
			p.status,
			i.unit_id,
			u.unit_no,
			i.period_start,
			i.period_end,
			i.status AS invoice_status,
			i.total_amount
		FROM payments p
		JOIN invoices i ON i.invoice_id = p.invoice_id
		JOIN units u ON u.unit_id = i.unit_id
		ORDER BY p.paid_at DESC, p.payment_id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.AdminPayment
	for rows.Next() {
		var p model.AdminPayment
		err := rows.Scan(
			&p.ID,
			&p.InvoiceID,
			&p.Method,
			&p.ReferenceNo,
			&p.Amount,
			&p.PaidAt,
			&p.Status,
			&p.UnitID,
			&p.UnitNumber,
			&p.PeriodStart,
			&p.PeriodEnd,
			&p.InvoiceStatus,
			&p.TotalAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, &p)
	}

	return payments, nil
}
