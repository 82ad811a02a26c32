package model

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "Pending"     // Ожидает обработки
	MaintenanceStatusInProgress MaintenanceStatus = "In Progress" // В работе
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"   // Выполнена
	MaintenanceStatusRejected   MaintenanceStatus = "Rejected"    // Отклонена
)

type MaintenanceRequest struct {
	ID          int64             `json:"request_id"`
	UnitID      int64             `json:"unit_id"`
	UnitLabel   string            `json:"unit_label"`
	RequestedBy string            `json:"requested_by"` // "имя (контакт)"
	Category    string            `json:"category"`
	Priority    string            `json:"priority"`
	Status      MaintenanceStatus `json:"status"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
}
