package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type doriActionRepository struct {
	mu      sync.RWMutex
	actions map[types.ID]*model.DoriAction
}

func newDoriActionRepository() *doriActionRepository {
	return &doriActionRepository{
		actions: make(map[types.ID]*model.DoriAction),
	}
}

func copyDoriAction(a *model.DoriAction) *model.DoriAction {
	copied := *a
	return &copied
}

func (r *doriActionRepository) List(ctx context.Context) ([]*model.DoriAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]*model.DoriAction, 0, len(r.actions))
	for _, a := range r.actions {
		actions = append(actions, copyDoriAction(a))
	}
	return actions, nil
}

func (r *doriActionRepository) Get(ctx context.Context, id types.ID) (*model.DoriAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.actions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "dori action not found", goerr.V("id", id))
	}
	return copyDoriAction(a), nil
}

func (r *doriActionRepository) Create(ctx context.Context, action *model.DoriAction) (*model.DoriAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyDoriAction(action)
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}
	r.actions[created.ID] = created
	return copyDoriAction(created), nil
}

func (r *doriActionRepository) Update(ctx context.Context, action *model.DoriAction) (*model.DoriAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[action.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "dori action not found", goerr.V("id", action.ID))
	}
	updated := copyDoriAction(action)
	r.actions[updated.ID] = updated
	return copyDoriAction(updated), nil
}
