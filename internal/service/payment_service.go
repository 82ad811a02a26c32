package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/Freeeeeet/condo_portal/internal/repository/base"
	"go.uber.org/zap"
)

// Допустимые решения администратора по платежу
const (
	DecisionApproved = "Approved"
	DecisionRejected = "Rejected"
)

// InvoiceStore хранилище счетов
type InvoiceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Invoice, error)
	ListForUnit(ctx context.Context, unitID int64) ([]*model.InvoiceWithPayment, error)
}

// PaymentLedger запись платежей. RecordSubmission и ApplyDecision обязаны
// менять платёж и статус его счёта одной атомарной единицей.
type PaymentLedger interface {
	RecordSubmission(ctx context.Context, payment *model.Payment) error
	ApplyDecision(ctx context.Context, paymentID int64, decision model.PaymentStatus, invoiceStatus model.InvoiceStatus) (*model.Invoice, error)
	ListAll(ctx context.Context) ([]*model.AdminPayment, error)
}

// UnitDirectory разрешение номера квартиры в юнит (read-only)
type UnitDirectory interface {
	GetByNumber(ctx context.Context, number string) (*model.Unit, error)
}

// PaymentService workflow оплаты счетов.
// Статусы счёта: Unpaid → Pending → {Paid, Unpaid}. Терминального статуса
// нет: Paid возвращается в Unpaid отклонением более позднего платежа.
type PaymentService struct {
	invoices InvoiceStore
	payments PaymentLedger
	units    UnitDirectory
	logger   *zap.Logger
}

func NewPaymentService(invoices InvoiceStore, payments PaymentLedger, units UnitDirectory, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		invoices: invoices,
		payments: payments,
		units:    units,
		logger:   logger,
	}
}

// SubmitPayment регистрирует заявку на оплату счёта.
// Платёж вставляется со статусом Pending, счёт переводится в Pending —
// обе записи в одной транзакции. Дубликаты не отсеиваются: по одному
// счёту может висеть несколько Pending платежей, решение администратора
// всегда привязано к конкретному payment_id.
func (s *PaymentService) SubmitPayment(ctx context.Context, invoiceID int64, method, referenceNo string, amount int64) (*model.Payment, error) {
	if strings.TrimSpace(method) == "" {
		return nil, validationError("method", "is required")
	}
	if amount <= 0 {
		return nil, validationError("amount", "must be positive")
	}

	invoice, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	payment := &model.Payment{
		InvoiceID: invoiceID,
		Method:    method,
		Amount:    amount,
	}
	if ref := strings.TrimSpace(referenceNo); ref != "" {
		payment.ReferenceNo = &ref
	}

	if err := s.payments.RecordSubmission(ctx, payment); err != nil {
		// Счёт мог исчезнуть между проверкой и транзакцией
		if base.IsNotFound(err) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	s.logger.Info("Payment submitted",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("invoice_id", invoiceID),
		zap.String("method", method),
		zap.Int64("amount", amount),
	)

	return payment, nil
}

// DecidePayment применяет решение администратора к платежу.
// Approved переводит счёт в Paid, Rejected — в Unpaid; статус платежа и
// статус счёта меняются одной транзакцией. Повторное решение по уже
// решённому платежу допустимо: пересмотр — нормальное действие
// администратора, статусы просто переприменяются.
func (s *PaymentService) DecidePayment(ctx context.Context, paymentID int64, decision string) (*model.Invoice, error) {
	var (
		paymentStatus model.PaymentStatus
		invoiceStatus model.InvoiceStatus
	)

	switch decision {
	case DecisionApproved:
		paymentStatus = model.PaymentStatusApproved
		invoiceStatus = model.InvoiceStatusPaid
	case DecisionRejected:
		paymentStatus = model.PaymentStatusRejected
		invoiceStatus = model.InvoiceStatusUnpaid
	default:
		return nil, validationError("decision", "must be Approved or Rejected")
	}

	invoice, err := s.payments.ApplyDecision(ctx, paymentID, paymentStatus, invoiceStatus)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrPaymentNotFound
	}

	s.logger.Info("Payment decided",
		zap.Int64("payment_id", paymentID),
		zap.String("decision", decision),
		zap.Int64("invoice_id", invoice.ID),
		zap.String("invoice_status", string(invoice.Status)),
	)

	return invoice, nil
}

// ListInvoicesForUnit возвращает счета юнита с последним платежом по каждому
func (s *PaymentService) ListInvoicesForUnit(ctx context.Context, unitNumber string) ([]*model.InvoiceWithPayment, error) {
	if strings.TrimSpace(unitNumber) == "" {
		return nil, validationError("unit_no", "is required")
	}

	unit, err := s.units.GetByNumber(ctx, unitNumber)
	if err != nil {
		return nil, fmt.Errorf("get unit: %w", err)
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}

	return s.invoices.ListForUnit(ctx, unit.ID)
}

// ListPaymentsForAdmin возвращает все платежи со счетами и юнитами
func (s *PaymentService) ListPaymentsForAdmin(ctx context.Context) ([]*model.AdminPayment, error) {
	return s.payments.ListAll(ctx)
}
