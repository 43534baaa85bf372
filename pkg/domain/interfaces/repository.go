package interfaces

import (
	"context"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	Reminder() ReminderRepository
	Maintenance() MaintenanceRepository
	Tenant() TenantRepository
	Document() DocumentRepository
	Property() PropertyRepository
	Notification() NotificationRepository
	Approval() ApprovalRepository
	DoriAction() DoriActionRepository
	Execution() ExecutionRepository
	Emergency() EmergencyRepository

	Close() error
}

// ReminderRepository persists property reminders
type ReminderRepository interface {
	List(ctx context.Context) ([]*model.Reminder, error)
	Get(ctx context.Context, id types.ID) (*model.Reminder, error)
	Create(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error)
	Update(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error)
	Delete(ctx context.Context, id types.ID) error
}

// MaintenanceRepository persists maintenance requests
type MaintenanceRepository interface {
	List(ctx context.Context) ([]*model.MaintenanceRequest, error)
	Get(ctx context.Context, id types.ID) (*model.MaintenanceRequest, error)
	Create(ctx context.Context, req *model.MaintenanceRequest) (*model.MaintenanceRequest, error)
	Update(ctx context.Context, req *model.MaintenanceRequest) (*model.MaintenanceRequest, error)
	Delete(ctx context.Context, id types.ID) error
}

// TenantRepository persists tenants
type TenantRepository interface {
	List(ctx context.Context) ([]*model.Tenant, error)
	Get(ctx context.Context, id types.ID) (*model.Tenant, error)
	Create(ctx context.Context, tenant *model.Tenant) (*model.Tenant, error)
	Update(ctx context.Context, tenant *model.Tenant) (*model.Tenant, error)
	Delete(ctx context.Context, id types.ID) error
}

// DocumentRepository persists document metadata
type DocumentRepository interface {
	List(ctx context.Context) ([]*model.Document, error)
	Get(ctx context.Context, id types.ID) (*model.Document, error)
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)
	Delete(ctx context.Context, id types.ID) error
}

// PropertyRepository persists properties (read-mostly for this subsystem)
type PropertyRepository interface {
	List(ctx context.Context) ([]*model.Property, error)
	Get(ctx context.Context, id types.ID) (*model.Property, error)
	Create(ctx context.Context, property *model.Property) (*model.Property, error)
}

// NotificationRepository persists the notification feed. List returns
// entries sorted descending by date.
type NotificationRepository interface {
	List(ctx context.Context) ([]*model.Notification, error)
	Get(ctx context.Context, id types.ID) (*model.Notification, error)
	Put(ctx context.Context, notification *model.Notification) error
	Update(ctx context.Context, notification *model.Notification) (*model.Notification, error)
	DeleteByKey(ctx context.Context, key model.NotificationKey) error
	MarkAllRead(ctx context.Context) error
	Clear(ctx context.Context) error
}

// ApprovalRepository persists landlord approval requests
type ApprovalRepository interface {
	List(ctx context.Context) ([]*model.ApprovalRequest, error)
	Get(ctx context.Context, id types.ID) (*model.ApprovalRequest, error)
	Create(ctx context.Context, req *model.ApprovalRequest) (*model.ApprovalRequest, error)
	Update(ctx context.Context, req *model.ApprovalRequest) (*model.ApprovalRequest, error)
}

// DoriActionRepository persists Dori suggested actions
type DoriActionRepository interface {
	List(ctx context.Context) ([]*model.DoriAction, error)
	Get(ctx context.Context, id types.ID) (*model.DoriAction, error)
	Create(ctx context.Context, action *model.DoriAction) (*model.DoriAction, error)
	Update(ctx context.Context, action *model.DoriAction) (*model.DoriAction, error)
}

// ExecutionRepository persists workflow execution records. The log is
// append-only: records are never updated or removed once written.
type ExecutionRepository interface {
	List(ctx context.Context) ([]*model.DoriExecution, error)
	Append(ctx context.Context, exec *model.DoriExecution) (*model.DoriExecution, error)
}

// EmergencyRepository persists emergency incidents
type EmergencyRepository interface {
	List(ctx context.Context) ([]*model.EmergencyItem, error)
	Get(ctx context.Context, id types.ID) (*model.EmergencyItem, error)
	Create(ctx context.Context, item *model.EmergencyItem) (*model.EmergencyItem, error)
	Update(ctx context.Context, item *model.EmergencyItem) (*model.EmergencyItem, error)
}
