package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DateLayout формат календарной даты во внешнем интерфейсе
const DateLayout = "2006-01-02"

// FacilityCatalog справочник объектов инфраструктуры (read-only)
type FacilityCatalog interface {
	GetByID(ctx context.Context, id int64) (*model.Facility, error)
	List(ctx context.Context) ([]*model.Facility, error)
}

// SlotLedger учёт закоммиченных броней по ключу (объект, дата, слот).
// Commit обязан атомарно перепроверить лимит и вставить бронь; при
// заполненном слоте возвращает repository.ErrSlotCapacity без побочных
// эффектов.
type SlotLedger interface {
	Commit(ctx context.Context, booking *model.Booking) error
	CountForSlot(ctx context.Context, facilityID int64, date time.Time, slot string) (int, error)
	ListOccupancy(ctx context.Context, facilityID int64, date time.Time) ([]*model.SlotOccupancy, error)
	ListRecent(ctx context.Context, limit int) ([]*model.AdminBooking, error)
}

type ReservationService struct {
	catalog FacilityCatalog
	ledger  SlotLedger
	logger  *zap.Logger
}

func NewReservationService(catalog FacilityCatalog, ledger SlotLedger, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

// Reserve бронирует слот объекта для жителя.
// На любой ошибке состояние не меняется: повторный неудачный вызов
// ничего не записывает.
func (s *ReservationService) Reserve(ctx context.Context, facilityID int64, date, slot string, requester model.Requester) (*model.Booking, error) {
	// Валидируем ввод до любых обращений к хранилищу
	bookingDate, err := parseBookingDate(date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(slot) == "" {
		return nil, validationError("time_slot", "is required")
	}
	if err := validateRequester(requester); err != nil {
		return nil, err
	}

	// Проверяем что объект существует
	facility, err := s.catalog.GetByID(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	booking := &model.Booking{
		FacilityID:    facilityID,
		Date:          bookingDate,
		Slot:          slot,
		Code:          uuid.New(), // код подтверждения для жителя
		ResidentName:  requester.ResidentName,
		UnitNumber:    requester.UnitNumber,
		ContactNumber: requester.ContactNumber,
	}

	// Проверка лимита и вставка — одна атомарная единица внутри леджера
	if err := s.ledger.Commit(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("Facility slot booked",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("facility_id", facilityID),
		zap.String("facility", facility.Name),
		zap.String("date", date),
		zap.String("slot", slot),
		zap.String("unit", requester.UnitNumber),
	)

	booking.Facility = facility

	return booking, nil
}

// ListBookings возвращает занятость слотов объекта на дату
func (s *ReservationService) ListBookings(ctx context.Context, facilityID int64, date string) ([]*model.SlotOccupancy, error) {
	bookingDate, err := parseBookingDate(date)
	if err != nil {
		return nil, err
	}

	facility, err := s.catalog.GetByID(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	return s.ledger.ListOccupancy(ctx, facilityID, bookingDate)
}

// ListFacilities возвращает справочник объектов инфраструктуры
func (s *ReservationService) ListFacilities(ctx context.Context) ([]*model.Facility, error) {
	return s.catalog.List(ctx)
}

// GetRecentBookings возвращает последние брони для админки
func (s *ReservationService) GetRecentBookings(ctx context.Context, limit int) ([]*model.AdminBooking, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.ledger.ListRecent(ctx, limit)
}

func parseBookingDate(date string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, validationError("booking_date", "must be a date in format "+DateLayout)
	}
	return parsed, nil
}

func validateRequester(r model.Requester) error {
	// Все три поля обязательны для аудита брони
	if strings.TrimSpace(r.ResidentName) == "" {
		return validationError("resident_name", "is required")
	}
	if strings.TrimSpace(r.UnitNumber) == "" {
		return validationError("unit_number", "is required")
	}
	if strings.TrimSpace(r.ContactNumber) == "" {
		return validationError("contact_number", "is required")
	}
	return nil
}
