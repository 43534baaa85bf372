package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type notificationRepository struct {
	mu            sync.RWMutex
	notifications map[types.ID]*model.Notification
}

func newNotificationRepository() *notificationRepository {
	return &notificationRepository{
		notifications: make(map[types.ID]*model.Notification),
	}
}

func copyNotification(n *model.Notification) *model.Notification {
	copied := *n
	return &copied
}

// List returns the feed sorted descending by date
func (r *notificationRepository) List(ctx context.Context) ([]*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := make([]*model.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		notifications = append(notifications, copyNotification(n))
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Date.After(notifications[j].Date)
	})
	return notifications, nil
}

func (r *notificationRepository) Get(ctx context.Context, id types.ID) (*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, exists := r.notifications[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", id))
	}
	return copyNotification(n), nil
}

func (r *notificationRepository) Put(ctx context.Context, notification *model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyNotification(notification)
	if stored.ID.IsEmpty() {
		stored.ID = types.NewID()
	}
	// one live notification per (parentID, type): a same-key put replaces
	for id, n := range r.notifications {
		if n.Key() == stored.Key() {
			delete(r.notifications, id)
		}
	}
	r.notifications[stored.ID] = stored
	return nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notifications[notification.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", notification.ID))
	}
	updated := copyNotification(notification)
	r.notifications[updated.ID] = updated
	return copyNotification(updated), nil
}

func (r *notificationRepository) DeleteByKey(ctx context.Context, key model.NotificationKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, n := range r.notifications {
		if n.Key() == key {
			delete(r.notifications, id)
		}
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		n.IsRead = true
	}
	return nil
}

func (r *notificationRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = make(map[types.ID]*model.Notification)
	return nil
}
