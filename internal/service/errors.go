package service

import (
	"errors"
	"fmt"
)

// Общие ошибки сервисного слоя
var (
	ErrFacilityNotFound = errors.New("facility not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrRequestNotFound  = errors.New("maintenance request not found")
	ErrEventNotFound    = errors.New("event not found")
)

// ValidationError ошибка входных данных вызывающей стороны.
// Никакие изменения состояния при ней не происходят.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func validationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
