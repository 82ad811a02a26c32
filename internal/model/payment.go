package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"  // Ожидает решения администратора
	PaymentStatusApproved PaymentStatus = "Approved" // Принят
	PaymentStatusRejected PaymentStatus = "Rejected" // Отклонён
)

// Payment заявка на оплату счёта. Записи не удаляются: по одному счёту
// может накопиться несколько платежей (повторные отправки, исправления).
type Payment struct {
	ID          int64         `json:"payment_id"`
	InvoiceID   int64         `json:"invoice_id"`
	Method      string        `json:"method"`
	ReferenceNo *string       `json:"reference_no,omitempty"`
	Amount      int64         `json:"amount"` // в центах
	PaidAt      time.Time     `json:"paid_at"`
	Status      PaymentStatus `json:"status"`
}

// AdminPayment строка для списка платежей в админке (join со счётом и юнитом)
type AdminPayment struct {
	Payment
	UnitID        int64         `json:"unit_id"`
	UnitNumber    string        `json:"unit_no"`
	PeriodStart   time.Time     `json:"period_start"`
	PeriodEnd     time.Time     `json:"period_end"`
	InvoiceStatus InvoiceStatus `json:"invoice_status"`
	TotalAmount   int64         `json:"total_amount"`
}
