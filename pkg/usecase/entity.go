package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/utils/errutil"
)

// Entity write operations for the watched record types. Every write is
// followed by a synchronous rule refresh so the notification feed reflects
// the change before the call returns. A refresh failure is logged but does
// not fail the write: the entity change has already been persisted.

func (u *UseCases) refreshAfterWrite(ctx context.Context) {
	if _, err := u.RefreshNotifications(ctx); err != nil {
		_ = errutil.Handle(ctx, err, "failed to refresh notifications after entity write")
	}
}

// SaveReminder creates or updates a reminder
func (u *UseCases) SaveReminder(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	var (
		saved *model.Reminder
		err   error
	)
	if reminder.ID.IsEmpty() {
		saved, err = u.repo.Reminder().Create(ctx, reminder)
	} else {
		saved, err = u.repo.Reminder().Update(ctx, reminder)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save reminder")
	}
	u.refreshAfterWrite(ctx)
	return saved, nil
}

// DeleteReminder removes a reminder and its derived notification
func (u *UseCases) DeleteReminder(ctx context.Context, id types.ID) error {
	if err := u.repo.Reminder().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete reminder", goerr.V("id", id))
	}
	if err := u.repo.Notification().DeleteByKey(ctx, model.NotificationKey{
		ParentID: id,
		Type:     types.NotificationOverdueReminder,
	}); err != nil {
		return goerr.Wrap(err, "failed to delete reminder notification", goerr.V("id", id))
	}
	u.refreshAfterWrite(ctx)
	return nil
}

// SaveMaintenanceRequest creates or updates a maintenance request
func (u *UseCases) SaveMaintenanceRequest(ctx context.Context, req *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	var (
		saved *model.MaintenanceRequest
		err   error
	)
	if req.ID.IsEmpty() {
		saved, err = u.repo.Maintenance().Create(ctx, req)
	} else {
		saved, err = u.repo.Maintenance().Update(ctx, req)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save maintenance request")
	}
	u.refreshAfterWrite(ctx)
	return saved, nil
}

// DeleteMaintenanceRequest removes a request and its derived notification
func (u *UseCases) DeleteMaintenanceRequest(ctx context.Context, id types.ID) error {
	if err := u.repo.Maintenance().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete maintenance request", goerr.V("id", id))
	}
	if err := u.repo.Notification().DeleteByKey(ctx, model.NotificationKey{
		ParentID: id,
		Type:     types.NotificationNewUrgentMaintenance,
	}); err != nil {
		return goerr.Wrap(err, "failed to delete maintenance notification", goerr.V("id", id))
	}
	u.refreshAfterWrite(ctx)
	return nil
}

// SaveTenant creates or updates a tenant
func (u *UseCases) SaveTenant(ctx context.Context, tenant *model.Tenant) (*model.Tenant, error) {
	var (
		saved *model.Tenant
		err   error
	)
	if tenant.ID.IsEmpty() {
		saved, err = u.repo.Tenant().Create(ctx, tenant)
	} else {
		saved, err = u.repo.Tenant().Update(ctx, tenant)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save tenant")
	}
	u.refreshAfterWrite(ctx)
	return saved, nil
}

// DeleteTenant removes a tenant and its derived notification
func (u *UseCases) DeleteTenant(ctx context.Context, id types.ID) error {
	if err := u.repo.Tenant().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete tenant", goerr.V("id", id))
	}
	if err := u.repo.Notification().DeleteByKey(ctx, model.NotificationKey{
		ParentID: id,
		Type:     types.NotificationLeaseExpirySoon,
	}); err != nil {
		return goerr.Wrap(err, "failed to delete tenant notification", goerr.V("id", id))
	}
	u.refreshAfterWrite(ctx)
	return nil
}

// SaveDocument creates or updates document metadata
func (u *UseCases) SaveDocument(ctx context.Context, doc *model.Document) (*model.Document, error) {
	var (
		saved *model.Document
		err   error
	)
	if doc.ID.IsEmpty() {
		saved, err = u.repo.Document().Create(ctx, doc)
	} else {
		saved, err = u.repo.Document().Update(ctx, doc)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save document")
	}
	u.refreshAfterWrite(ctx)
	return saved, nil
}

// DeleteDocument removes document metadata and its derived notification
func (u *UseCases) DeleteDocument(ctx context.Context, id types.ID) error {
	if err := u.repo.Document().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete document", goerr.V("id", id))
	}
	if err := u.repo.Notification().DeleteByKey(ctx, model.NotificationKey{
		ParentID: id,
		Type:     types.NotificationDocumentExpirySoon,
	}); err != nil {
		return goerr.Wrap(err, "failed to delete document notification", goerr.V("id", id))
	}
	u.refreshAfterWrite(ctx)
	return nil
}
