package model

import "time"

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "Unpaid"  // Не оплачен
	InvoiceStatusPending InvoiceStatus = "Pending" // Платёж на рассмотрении
	InvoiceStatusPaid    InvoiceStatus = "Paid"    // Оплачен
)

// Invoice счёт за период. Статус — производное поле: его меняет только
// платёжный workflow, всегда в одной транзакции с записью платежа.
type Invoice struct {
	ID          int64         `json:"invoice_id"`
	UnitID      int64         `json:"unit_id"`
	PeriodStart time.Time     `json:"period_start"`
	PeriodEnd   time.Time     `json:"period_end"`
	Status      InvoiceStatus `json:"status"`
	CondoFee    int64         `json:"condo_fee"`    // в центах
	CarparkFee  int64         `json:"carpark_fee"`  // в центах
	TotalAmount int64         `json:"total_amount"` // в центах
}

// InvoiceWithPayment счёт вместе с последним платежом по нему.
// Последний = максимальный paid_at, при равенстве — больший payment_id.
type InvoiceWithPayment struct {
	Invoice
	UnitNumber string   `json:"unit_no"`
	Latest     *Payment `json:"latest_payment,omitempty"`
}
