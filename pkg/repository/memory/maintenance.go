package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type maintenanceRepository struct {
	mu       sync.RWMutex
	requests map[types.ID]*model.MaintenanceRequest
}

func newMaintenanceRepository() *maintenanceRepository {
	return &maintenanceRepository{
		requests: make(map[types.ID]*model.MaintenanceRequest),
	}
}

func copyMaintenance(m *model.MaintenanceRequest) *model.MaintenanceRequest {
	copied := *m
	if m.QuoteAmount != nil {
		v := *m.QuoteAmount
		copied.QuoteAmount = &v
	}
	if m.CompletionDate != nil {
		d := *m.CompletionDate
		copied.CompletionDate = &d
	}
	return &copied
}

func (r *maintenanceRepository) List(ctx context.Context) ([]*model.MaintenanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]*model.MaintenanceRequest, 0, len(r.requests))
	for _, req := range r.requests {
		requests = append(requests, copyMaintenance(req))
	}
	return requests, nil
}

func (r *maintenanceRepository) Get(ctx context.Context, id types.ID) (*model.MaintenanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, exists := r.requests[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "maintenance request not found", goerr.V("id", id))
	}
	return copyMaintenance(req), nil
}

func (r *maintenanceRepository) Create(ctx context.Context, req *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyMaintenance(req)
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}
	r.requests[created.ID] = created
	return copyMaintenance(created), nil
}

func (r *maintenanceRepository) Update(ctx context.Context, req *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[req.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "maintenance request not found", goerr.V("id", req.ID))
	}
	updated := copyMaintenance(req)
	r.requests[updated.ID] = updated
	return copyMaintenance(updated), nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id types.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[id]; !exists {
		return goerr.Wrap(ErrNotFound, "maintenance request not found", goerr.V("id", id))
	}
	delete(r.requests, id)
	return nil
}
