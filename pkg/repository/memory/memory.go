package memory

import (
	"github.com/doorap-lab/doorap/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	reminder     *reminderRepository
	maintenance  *maintenanceRepository
	tenant       *tenantRepository
	document     *documentRepository
	property     *propertyRepository
	notification *notificationRepository
	approval     *approvalRepository
	doriAction   *doriActionRepository
	execution    *executionRepository
	emergency    *emergencyRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		reminder:     newReminderRepository(),
		maintenance:  newMaintenanceRepository(),
		tenant:       newTenantRepository(),
		document:     newDocumentRepository(),
		property:     newPropertyRepository(),
		notification: newNotificationRepository(),
		approval:     newApprovalRepository(),
		doriAction:   newDoriActionRepository(),
		execution:    newExecutionRepository(),
		emergency:    newEmergencyRepository(),
	}
}

func (m *Memory) Reminder() interfaces.ReminderRepository {
	return m.reminder
}

func (m *Memory) Maintenance() interfaces.MaintenanceRepository {
	return m.maintenance
}

func (m *Memory) Tenant() interfaces.TenantRepository {
	return m.tenant
}

func (m *Memory) Document() interfaces.DocumentRepository {
	return m.document
}

func (m *Memory) Property() interfaces.PropertyRepository {
	return m.property
}

func (m *Memory) Notification() interfaces.NotificationRepository {
	return m.notification
}

func (m *Memory) Approval() interfaces.ApprovalRepository {
	return m.approval
}

func (m *Memory) DoriAction() interfaces.DoriActionRepository {
	return m.doriAction
}

func (m *Memory) Execution() interfaces.ExecutionRepository {
	return m.execution
}

func (m *Memory) Emergency() interfaces.EmergencyRepository {
	return m.emergency
}

func (m *Memory) Close() error {
	return nil
}
