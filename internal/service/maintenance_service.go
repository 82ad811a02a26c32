package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/Freeeeeet/condo_portal/internal/repository/base"
	"go.uber.org/zap"
)

// MaintenanceStore хранилище заявок на обслуживание
type MaintenanceStore interface {
	Create(ctx context.Context, request *model.MaintenanceRequest) error
	ListRecent(ctx context.Context, limit int) ([]*model.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status model.MaintenanceStatus) error
}

type MaintenanceService struct {
	store  MaintenanceStore
	units  UnitDirectory
	logger *zap.Logger
}

func NewMaintenanceService(store MaintenanceStore, units UnitDirectory, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		store:  store,
		units:  units,
		logger: logger,
	}
}

// Submit создаёт заявку на обслуживание от жителя
func (s *MaintenanceService) Submit(ctx context.Context, residentName, unitNumber, contactNumber, category, description string) (*model.MaintenanceRequest, error) {
	if strings.TrimSpace(residentName) == "" {
		return nil, validationError("resident_name", "is required")
	}
	if strings.TrimSpace(unitNumber) == "" {
		return nil, validationError("unit_number", "is required")
	}
	if strings.TrimSpace(contactNumber) == "" {
		return nil, validationError("contact_number", "is required")
	}
	if strings.TrimSpace(category) == "" {
		return nil, validationError("category", "is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, validationError("description", "is required")
	}

	// Номер квартиры должен разрешаться в существующий юнит
	unit, err := s.units.GetByNumber(ctx, unitNumber)
	if err != nil {
		return nil, fmt.Errorf("get unit: %w", err)
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}

	request := &model.MaintenanceRequest{
		UnitID:      unit.ID,
		UnitLabel:   unit.Number,
		RequestedBy: fmt.Sprintf("%s (%s)", residentName, contactNumber),
		Category:    category,
		Priority:    "Normal",
		Status:      model.MaintenanceStatusPending,
		Description: description,
	}

	if err := s.store.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("Maintenance request submitted",
		zap.Int64("request_id", request.ID),
		zap.String("unit", unit.Number),
		zap.String("category", category),
	)

	return request, nil
}

// ListRecent возвращает последние заявки для админки
func (s *MaintenanceService) ListRecent(ctx context.Context, limit int) ([]*model.MaintenanceRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.store.ListRecent(ctx, limit)
}

// UpdateStatus меняет статус заявки
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id int64, status string) error {
	newStatus := model.MaintenanceStatus(status)
	switch newStatus {
	case model.MaintenanceStatusPending,
		model.MaintenanceStatusInProgress,
		model.MaintenanceStatusCompleted,
		model.MaintenanceStatusRejected:
	default:
		return validationError("status", "unknown maintenance status")
	}

	if err := s.store.UpdateStatus(ctx, id, newStatus); err != nil {
		if base.IsNotFound(err) {
			return ErrRequestNotFound
		}
		return err
	}

	s.logger.Info("Maintenance status updated",
		zap.Int64("request_id", id),
		zap.String("status", status),
	)

	return nil
}
