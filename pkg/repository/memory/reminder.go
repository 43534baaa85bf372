package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type reminderRepository struct {
	mu        sync.RWMutex
	reminders map[types.ID]*model.Reminder
}

func newReminderRepository() *reminderRepository {
	return &reminderRepository{
		reminders: make(map[types.ID]*model.Reminder),
	}
}

func copyReminder(r *model.Reminder) *model.Reminder {
	copied := *r
	if r.LastCompletedDate != nil {
		d := *r.LastCompletedDate
		copied.LastCompletedDate = &d
	}
	return &copied
}

func (r *reminderRepository) List(ctx context.Context) ([]*model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminders := make([]*model.Reminder, 0, len(r.reminders))
	for _, reminder := range r.reminders {
		reminders = append(reminders, copyReminder(reminder))
	}
	return reminders, nil
}

func (r *reminderRepository) Get(ctx context.Context, id types.ID) (*model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminder, exists := r.reminders[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
	}
	return copyReminder(reminder), nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyReminder(reminder)
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}
	r.reminders[created.ID] = created
	return copyReminder(created), nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reminders[reminder.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", reminder.ID))
	}
	updated := copyReminder(reminder)
	r.reminders[updated.ID] = updated
	return copyReminder(updated), nil
}

func (r *reminderRepository) Delete(ctx context.Context, id types.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reminders[id]; !exists {
		return goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
	}
	delete(r.reminders, id)
	return nil
}
