package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type approvalRepository struct {
	mu       sync.RWMutex
	requests map[types.ID]*model.ApprovalRequest
}

func newApprovalRepository() *approvalRepository {
	return &approvalRepository{
		requests: make(map[types.ID]*model.ApprovalRequest),
	}
}

func copyApproval(a *model.ApprovalRequest) *model.ApprovalRequest {
	copied := *a
	if a.Amount != nil {
		v := *a.Amount
		copied.Amount = &v
	}
	if a.ViewedDate != nil {
		d := *a.ViewedDate
		copied.ViewedDate = &d
	}
	if a.ActionDate != nil {
		d := *a.ActionDate
		copied.ActionDate = &d
	}
	return &copied
}

func (r *approvalRepository) List(ctx context.Context) ([]*model.ApprovalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]*model.ApprovalRequest, 0, len(r.requests))
	for _, req := range r.requests {
		requests = append(requests, copyApproval(req))
	}
	return requests, nil
}

func (r *approvalRepository) Get(ctx context.Context, id types.ID) (*model.ApprovalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, exists := r.requests[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "approval request not found", goerr.V("id", id))
	}
	return copyApproval(req), nil
}

func (r *approvalRepository) Create(ctx context.Context, req *model.ApprovalRequest) (*model.ApprovalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyApproval(req)
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}
	r.requests[created.ID] = created
	return copyApproval(created), nil
}

func (r *approvalRepository) Update(ctx context.Context, req *model.ApprovalRequest) (*model.ApprovalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[req.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "approval request not found", goerr.V("id", req.ID))
	}
	updated := copyApproval(req)
	r.requests[updated.ID] = updated
	return copyApproval(updated), nil
}
