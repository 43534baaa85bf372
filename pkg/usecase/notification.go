package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// RefreshNotifications snapshots the watched entities, evaluates the alert
// rules and stores any newly derived notifications. It returns the derived
// notifications. Existing feed entries always win over re-derivation.
func (u *UseCases) RefreshNotifications(ctx context.Context) ([]*model.Notification, error) {
	snap, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := u.repo.Notification().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notifications")
	}

	derived := evaluateRules(snap, existing, u.now(), u.leaseExpiryWindow, u.documentExpiryWindow)
	for _, n := range derived {
		if err := u.repo.Notification().Put(ctx, n); err != nil {
			return nil, goerr.Wrap(err, "failed to store derived notification", goerr.V("key", n.Key()))
		}
	}

	return derived, nil
}

func (u *UseCases) snapshot(ctx context.Context) (*Snapshot, error) {
	reminders, err := u.repo.Reminder().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reminders")
	}
	requests, err := u.repo.Maintenance().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list maintenance requests")
	}
	tenants, err := u.repo.Tenant().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tenants")
	}
	documents, err := u.repo.Document().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list documents")
	}
	properties, err := u.repo.Property().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list properties")
	}

	return &Snapshot{
		Reminders:  reminders,
		Requests:   requests,
		Tenants:    tenants,
		Documents:  documents,
		Properties: properties,
	}, nil
}

// AddNotification stores a user-created notification. A same-key entry is
// replaced, keeping the one-per-(parent, type) invariant.
func (u *UseCases) AddNotification(ctx context.Context, n *model.Notification) error {
	if n.Type == "" {
		n.Type = types.NotificationGeneralInfo
	}
	if n.ParentType == "" {
		n.ParentType = types.ParentGeneral
	}
	if n.Date.IsZero() {
		n.Date = u.now()
	}
	if n.ID.IsEmpty() {
		n.ID = types.NewID()
	}
	if err := u.repo.Notification().Put(ctx, n); err != nil {
		return goerr.Wrap(err, "failed to store notification")
	}
	return nil
}

// ListNotifications returns the feed, newest first
func (u *UseCases) ListNotifications(ctx context.Context) ([]*model.Notification, error) {
	notifications, err := u.repo.Notification().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notifications")
	}
	return notifications, nil
}

// UnreadNotificationCount returns the number of unread feed entries
func (u *UseCases) UnreadNotificationCount(ctx context.Context) (int, error) {
	notifications, err := u.repo.Notification().List(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list notifications")
	}
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkNotificationRead marks a single notification as read
func (u *UseCases) MarkNotificationRead(ctx context.Context, id types.ID) (*model.Notification, error) {
	n, err := u.repo.Notification().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get notification", goerr.V("id", id))
	}
	if n.IsRead {
		return n, nil
	}
	n.IsRead = true
	updated, err := u.repo.Notification().Update(ctx, n)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update notification", goerr.V("id", id))
	}
	return updated, nil
}

// MarkAllNotificationsRead marks every feed entry as read
func (u *UseCases) MarkAllNotificationsRead(ctx context.Context) error {
	if err := u.repo.Notification().MarkAllRead(ctx); err != nil {
		return goerr.Wrap(err, "failed to mark notifications read")
	}
	return nil
}

// ClearNotifications empties the feed. Cleared alerts may be re-derived on
// the next refresh if their conditions still hold.
func (u *UseCases) ClearNotifications(ctx context.Context) error {
	if err := u.repo.Notification().Clear(ctx); err != nil {
		return goerr.Wrap(err, "failed to clear notifications")
	}
	return nil
}
