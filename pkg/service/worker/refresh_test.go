package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/service/worker"
)

type countingRefresher struct {
	calls int32
}

func (r *countingRefresher) RefreshNotifications(ctx context.Context) ([]*model.Notification, error) {
	atomic.AddInt32(&r.calls, 1)
	return nil, nil
}

func TestNotificationRefreshWorker(t *testing.T) {
	t.Run("runs immediately and on each tick", func(t *testing.T) {
		refresher := &countingRefresher{}
		w := worker.NewNotificationRefreshWorker(refresher, 10*time.Millisecond)

		w.Start(context.Background())
		time.Sleep(35 * time.Millisecond)
		w.Stop()

		calls := atomic.LoadInt32(&refresher.calls)
		gt.Bool(t, calls >= 2).True()
	})

	t.Run("stop waits for the loop to exit", func(t *testing.T) {
		refresher := &countingRefresher{}
		w := worker.NewNotificationRefreshWorker(refresher, time.Hour)

		w.Start(context.Background())
		w.Stop()

		after := atomic.LoadInt32(&refresher.calls)
		time.Sleep(10 * time.Millisecond)
		gt.Value(t, atomic.LoadInt32(&refresher.calls)).Equal(after)
	})
}
