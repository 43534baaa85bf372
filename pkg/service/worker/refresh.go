package worker

import (
	"context"
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/utils/logging"
)

// Refresher re-derives the notification feed from the current entity state
type Refresher interface {
	RefreshNotifications(ctx context.Context) ([]*model.Notification, error)
}

// NotificationRefreshWorker re-runs the alert rules on a fixed interval so
// time-based conditions (a reminder crossing midnight, a lease entering its
// expiry window) surface without an entity write.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - Derivation is idempotent, so overlapping triggers are harmless
type NotificationRefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func NewNotificationRefreshWorker(refresher Refresher, interval time.Duration) *NotificationRefreshWorker {
	return &NotificationRefreshWorker{
		refresher: refresher,
		interval:  interval,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background refresh loop. It does not block.
func (w *NotificationRefreshWorker) Start(ctx context.Context) {
	logging.Default().Info("notification refresh worker starting",
		"interval", w.interval.String())

	go w.run(ctx)
}

// Stop signals the worker to stop and waits for completion
func (w *NotificationRefreshWorker) Stop() {
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("notification refresh worker stopped")
}

func (w *NotificationRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refresh(ctx)

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("notification refresh worker context cancelled")
			return
		}
	}
}

func (w *NotificationRefreshWorker) refresh(ctx context.Context) {
	derived, err := w.refresher.RefreshNotifications(ctx)
	if err != nil {
		// keep the loop alive; the next tick retries
		logging.Default().Error("scheduled notification refresh failed",
			"error", err.Error())
		return
	}
	if len(derived) > 0 {
		logging.Default().Info("scheduled notification refresh derived alerts",
			"count", len(derived))
	}
}
