package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type fakeMaintenanceStore struct {
	requests map[int64]*model.MaintenanceRequest
	nextID   int64
}

func (f *fakeMaintenanceStore) Create(_ context.Context, request *model.MaintenanceRequest) error {
	f.nextID++
	request.ID = f.nextID
	f.requests[request.ID] = request
	return nil
}

func (f *fakeMaintenanceStore) ListRecent(_ context.Context, limit int) ([]*model.MaintenanceRequest, error) {
	var out []*model.MaintenanceRequest
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeMaintenanceStore) UpdateStatus(_ context.Context, id int64, status model.MaintenanceStatus) error {
	request, ok := f.requests[id]
	if !ok {
		return pgx.ErrNoRows
	}
	request.Status = status
	return nil
}

func newMaintenanceService(t *testing.T) (*service.MaintenanceService, *fakeMaintenanceStore) {
	t.Helper()

	billing := newFakeBilling()
	billing.units["101"] = &model.Unit{ID: 1, Number: "101"}
	store := &fakeMaintenanceStore{requests: make(map[int64]*model.MaintenanceRequest)}
	return service.NewMaintenanceService(store, billing, zap.NewNop()), store
}

func TestMaintenanceSubmit(t *testing.T) {
	svc, store := newMaintenanceService(t)

	request, err := svc.Submit(context.Background(), "Alice Tan", "101", "+6591234567", "Plumbing", "Kitchen sink leaks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != model.MaintenanceStatusPending {
		t.Fatalf("expected Pending status, got %s", request.Status)
	}
	if request.Priority != "Normal" {
		t.Fatalf("expected Normal priority, got %s", request.Priority)
	}
	if request.RequestedBy != "Alice Tan (+6591234567)" {
		t.Fatalf("unexpected requested_by: %s", request.RequestedBy)
	}
	if request.UnitID != 1 || request.UnitLabel != "101" {
		t.Fatalf("unit not resolved: %+v", request)
	}
	if len(store.requests) != 1 {
		t.Fatalf("expected 1 stored request, got %d", len(store.requests))
	}
}

func TestMaintenanceSubmitValidation(t *testing.T) {
	svc, store := newMaintenanceService(t)
	ctx := context.Background()

	cases := []struct {
		name                                           string
		resident, unit, contact, category, description string
	}{
		{"empty name", "", "101", "123", "Plumbing", "leak"},
		{"empty unit", "Alice", "", "123", "Plumbing", "leak"},
		{"empty contact", "Alice", "101", "", "Plumbing", "leak"},
		{"empty category", "Alice", "101", "123", "", "leak"},
		{"empty description", "Alice", "101", "123", "Plumbing", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.resident, tc.unit, tc.contact, tc.category, tc.description)

			var validation *service.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	if len(store.requests) != 0 {
		t.Fatal("failed submissions must not store requests")
	}
}

func TestMaintenanceSubmitUnknownUnit(t *testing.T) {
	svc, _ := newMaintenanceService(t)

	_, err := svc.Submit(context.Background(), "Alice", "999", "123", "Plumbing", "leak")
	if !errors.Is(err, service.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestMaintenanceUpdateStatus(t *testing.T) {
	svc, store := newMaintenanceService(t)
	ctx := context.Background()

	request, err := svc.Submit(ctx, "Alice", "101", "123", "Plumbing", "leak")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.UpdateStatus(ctx, request.ID, "In Progress"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.requests[request.ID].Status != model.MaintenanceStatusInProgress {
		t.Fatalf("status not updated: %s", store.requests[request.ID].Status)
	}

	var validation *service.ValidationError
	if err := svc.UpdateStatus(ctx, request.ID, "Lost"); !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}

	if err := svc.UpdateStatus(ctx, 999, "Completed"); !errors.Is(err, service.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}
