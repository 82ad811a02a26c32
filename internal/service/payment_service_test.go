package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// fakeBilling хранилище счетов и платежей в памяти. Повторяет контракт
// репозиториев: запись платежа и статус счёта меняются под одной
// блокировкой, выборка последнего платежа — max(paid_at), при равенстве
// больший id.
type fakeBilling struct {
	mu       sync.Mutex
	invoices map[int64]*model.Invoice
	payments map[int64]*model.Payment
	units    map[string]*model.Unit
	nextID   int64
	now      time.Time
}

func newFakeBilling() *fakeBilling {
	return &fakeBilling{
		invoices: make(map[int64]*model.Invoice),
		payments: make(map[int64]*model.Payment),
		units:    make(map[string]*model.Unit),
		now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeBilling) addInvoice(inv *model.Invoice) {
	f.invoices[inv.ID] = inv
}

func (f *fakeBilling) GetByID(_ context.Context, id int64) (*model.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invoices[id], nil
}

func (f *fakeBilling) ListForUnit(_ context.Context, unitID int64) ([]*model.InvoiceWithPayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.InvoiceWithPayment
	for _, inv := range f.invoices {
		if inv.UnitID != unitID {
			continue
		}
		row := &model.InvoiceWithPayment{Invoice: *inv}
		for _, p := range f.payments {
			if p.InvoiceID != inv.ID {
				continue
			}
			if row.Latest == nil ||
				p.PaidAt.After(row.Latest.PaidAt) ||
				(p.PaidAt.Equal(row.Latest.PaidAt) && p.ID > row.Latest.ID) {
				latest := *p
				row.Latest = &latest
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeBilling) RecordSubmission(_ context.Context, payment *model.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	invoice := f.invoices[payment.InvoiceID]
	if invoice == nil {
		return pgx.ErrNoRows
	}

	f.nextID++
	payment.ID = f.nextID
	payment.PaidAt = f.now
	payment.Status = model.PaymentStatusPending
	stored := *payment
	f.payments[payment.ID] = &stored

	invoice.Status = model.InvoiceStatusPending
	return nil
}

func (f *fakeBilling) ApplyDecision(_ context.Context, paymentID int64, decision model.PaymentStatus, invoiceStatus model.InvoiceStatus) (*model.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	payment := f.payments[paymentID]
	if payment == nil {
		return nil, nil
	}

	payment.Status = decision
	invoice := f.invoices[payment.InvoiceID]
	invoice.Status = invoiceStatus
	return invoice, nil
}

func (f *fakeBilling) ListAll(_ context.Context) ([]*model.AdminPayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.AdminPayment
	for _, p := range f.payments {
		out = append(out, &model.AdminPayment{Payment: *p})
	}
	return out, nil
}

func (f *fakeBilling) GetByNumber(_ context.Context, number string) (*model.Unit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.units[number], nil
}

func newPaymentService(t *testing.T) (*service.PaymentService, *fakeBilling) {
	t.Helper()

	billing := newFakeBilling()
	billing.units["101"] = &model.Unit{ID: 1, Number: "101"}
	billing.addInvoice(&model.Invoice{ID: 7, UnitID: 1, Status: model.InvoiceStatusUnpaid, TotalAmount: 15000})
	return service.NewPaymentService(billing, billing, billing, zap.NewNop()), billing
}

func TestSubmitPaymentValidation(t *testing.T) {
	svc, billing := newPaymentService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		method string
		amount int64
	}{
		{"empty method", "", 15000},
		{"zero amount", "bank", 0},
		{"negative amount", "bank", -500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitPayment(ctx, 7, tc.method, "", tc.amount)

			var validation *service.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	if len(billing.payments) != 0 {
		t.Fatal("failed submissions must not record payments")
	}
	if billing.invoices[7].Status != model.InvoiceStatusUnpaid {
		t.Fatal("failed submissions must not touch invoice status")
	}
}

func TestSubmitPaymentUnknownInvoice(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.SubmitPayment(context.Background(), 999, "bank", "", 15000)
	if !errors.Is(err, service.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestSubmitPaymentMarksInvoicePending(t *testing.T) {
	svc, billing := newPaymentService(t)

	payment, err := svc.SubmitPayment(context.Background(), 7, "bank", "TXN-0042", 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != model.PaymentStatusPending {
		t.Fatalf("expected Pending payment, got %s", payment.Status)
	}
	if payment.ReferenceNo == nil || *payment.ReferenceNo != "TXN-0042" {
		t.Fatalf("expected reference kept, got %v", payment.ReferenceNo)
	}
	if billing.invoices[7].Status != model.InvoiceStatusPending {
		t.Fatalf("expected invoice Pending, got %s", billing.invoices[7].Status)
	}
}

func TestSubmitPaymentAllowsDuplicates(t *testing.T) {
	svc, billing := newPaymentService(t)
	ctx := context.Background()

	// Несколько Pending платежей по одному счёту — допустимое поведение:
	// решение администратора привязывается к конкретному payment_id.
	first, err := svc.SubmitPayment(ctx, 7, "bank", "", 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SubmitPayment(ctx, 7, "paynow", "", 15000)
	if err != nil {
		t.Fatalf("unexpected error on resubmission: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected distinct payment records")
	}
	if len(billing.payments) != 2 {
		t.Fatalf("expected 2 payments stored, got %d", len(billing.payments))
	}
}

func TestDecidePayment(t *testing.T) {
	svc, billing := newPaymentService(t)
	ctx := context.Background()

	payment, err := svc.SubmitPayment(ctx, 7, "bank", "", 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invoice, err := svc.DecidePayment(ctx, payment.ID, service.DecisionApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invoice.Status != model.InvoiceStatusPaid {
		t.Fatalf("expected invoice Paid after approval, got %s", invoice.Status)
	}
	if billing.payments[payment.ID].Status != model.PaymentStatusApproved {
		t.Fatalf("expected payment Approved, got %s", billing.payments[payment.ID].Status)
	}

	// Повторное решение допустимо и переприменяет статусы
	invoice, err = svc.DecidePayment(ctx, payment.ID, service.DecisionRejected)
	if err != nil {
		t.Fatalf("unexpected error on re-decision: %v", err)
	}
	if invoice.Status != model.InvoiceStatusUnpaid {
		t.Fatalf("expected invoice Unpaid after rejection, got %s", invoice.Status)
	}
	if billing.payments[payment.ID].Status != model.PaymentStatusRejected {
		t.Fatalf("expected payment Rejected, got %s", billing.payments[payment.ID].Status)
	}

	invoice, err = svc.DecidePayment(ctx, payment.ID, service.DecisionApproved)
	if err != nil {
		t.Fatalf("unexpected error on second re-decision: %v", err)
	}
	if invoice.Status != model.InvoiceStatusPaid {
		t.Fatalf("expected invoice Paid again, got %s", invoice.Status)
	}
}

func TestDecidePaymentUnknownDecision(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.DecidePayment(context.Background(), 1, "Maybe")

	var validation *service.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDecidePaymentUnknownPayment(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.DecidePayment(context.Background(), 999, service.DecisionApproved)
	if !errors.Is(err, service.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestListInvoicesForUnit(t *testing.T) {
	svc, _ := newPaymentService(t)
	ctx := context.Background()

	if _, err := svc.SubmitPayment(ctx, 7, "bank", "", 15000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Второй платёж с тем же paid_at: последним должен считаться больший id
	second, err := svc.SubmitPayment(ctx, 7, "paynow", "", 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invoices, err := svc.ListInvoicesForUnit(ctx, "101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(invoices))
	}
	if invoices[0].Latest == nil || invoices[0].Latest.ID != second.ID {
		t.Fatalf("expected payment %d as latest, got %+v", second.ID, invoices[0].Latest)
	}
}

func TestListInvoicesUnknownUnit(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.ListInvoicesForUnit(context.Background(), "999")
	if !errors.Is(err, service.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}
