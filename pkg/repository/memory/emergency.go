package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type emergencyRepository struct {
	mu    sync.RWMutex
	items map[types.ID]*model.EmergencyItem
}

func newEmergencyRepository() *emergencyRepository {
	return &emergencyRepository{
		items: make(map[types.ID]*model.EmergencyItem),
	}
}

func copyEmergency(e *model.EmergencyItem) *model.EmergencyItem {
	copied := *e
	if e.Checklist != nil {
		copied.Checklist = make([]model.ChecklistItem, len(e.Checklist))
		copy(copied.Checklist, e.Checklist)
	}
	return &copied
}

func (r *emergencyRepository) List(ctx context.Context) ([]*model.EmergencyItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.EmergencyItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, copyEmergency(item))
	}
	return items, nil
}

func (r *emergencyRepository) Get(ctx context.Context, id types.ID) (*model.EmergencyItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "emergency item not found", goerr.V("id", id))
	}
	return copyEmergency(item), nil
}

func (r *emergencyRepository) Create(ctx context.Context, item *model.EmergencyItem) (*model.EmergencyItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyEmergency(item)
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}
	r.items[created.ID] = created
	return copyEmergency(created), nil
}

func (r *emergencyRepository) Update(ctx context.Context, item *model.EmergencyItem) (*model.EmergencyItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "emergency item not found", goerr.V("id", item.ID))
	}
	updated := copyEmergency(item)
	r.items[updated.ID] = updated
	return copyEmergency(updated), nil
}
