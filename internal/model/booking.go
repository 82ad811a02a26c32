package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlotKey идентифицирует единицу брони: объект + дата + слот времени.
// Лимит вместимости действует на каждый такой ключ независимо.
type TimeSlotKey struct {
	FacilityID int64     `json:"facility_id"`
	Date       time.Time `json:"date"` // календарная дата, время игнорируется
	Slot       string    `json:"slot"` // метка слота, например "09:00-10:00"
}

// Requester данные жителя, обязательные для аудита брони
type Requester struct {
	ResidentName  string `json:"resident_name"`
	UnitNumber    string `json:"unit_number"`
	ContactNumber string `json:"contact_number"`
}

type Booking struct {
	ID            int64     `json:"id"`
	FacilityID    int64     `json:"facility_id"`
	Date          time.Time `json:"booking_date"`
	Slot          string    `json:"time_slot"`
	Code          uuid.UUID `json:"code"` // публичный код подтверждения
	ResidentName  string    `json:"resident_name"`
	UnitNumber    string    `json:"unit_number"`
	ContactNumber string    `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`

	// Дополнительные поля для удобства (не из БД)
	Facility *Facility `json:"facility,omitempty"`
}

// SlotOccupancy занятость одного слота на дату
type SlotOccupancy struct {
	Slot   string `json:"time_slot"`
	Booked int    `json:"booked_count"`
}

// AdminBooking строка для списка броней в админке (join с объектами)
type AdminBooking struct {
	ID            int64     `json:"id"`
	FacilityName  string    `json:"facility_name"`
	ResidentName  string    `json:"resident_name"`
	UnitNumber    string    `json:"unit_number"`
	ContactNumber string    `json:"contact_number"`
	Date          time.Time `json:"booking_date"`
	Slot          string    `json:"time_slot"`
	CreatedAt     time.Time `json:"created_at"`
}
