package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/utils/errutil"
	"github.com/doorap-lab/doorap/pkg/utils/logging"
)

// PendingApprovals returns approval requests still awaiting a landlord
// decision, i.e. those not in a terminal state.
func (u *UseCases) PendingApprovals(ctx context.Context) ([]*model.ApprovalRequest, error) {
	requests, err := u.repo.Approval().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list approval requests")
	}
	pending := make([]*model.ApprovalRequest, 0, len(requests))
	for _, req := range requests {
		if !req.Status.IsTerminal() {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

// MarkApprovalViewed records that a landlord has opened the request. Only
// a Sent request transitions; Viewed and terminal requests are left as-is.
func (u *UseCases) MarkApprovalViewed(ctx context.Context, id types.ID) (*model.ApprovalRequest, error) {
	req, err := u.repo.Approval().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get approval request", goerr.V("id", id))
	}
	if req.Status != types.ApprovalStatusSent {
		return req, nil
	}
	now := u.now()
	req.Status = types.ApprovalStatusViewed
	req.ViewedDate = &now
	updated, err := u.repo.Approval().Update(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update approval request", goerr.V("id", id))
	}
	return updated, nil
}

// ApproveRequest moves a request to Approved and cascades the decision to
// the linked maintenance request, if any. Approving a request that is
// already terminal is a no-op. The cascade is a second independent write:
// a missing or unwritable target leaves the approval itself Approved.
func (u *UseCases) ApproveRequest(ctx context.Context, id types.ID) (*model.ApprovalRequest, error) {
	req, err := u.repo.Approval().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get approval request", goerr.V("id", id))
	}
	if req.Status.IsTerminal() {
		return req, nil
	}

	now := u.now()
	req.Status = types.ApprovalStatusApproved
	req.ActionDate = &now
	updated, err := u.repo.Approval().Update(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update approval request", goerr.V("id", id))
	}

	u.cascadeMaintenanceApproval(ctx, updated)

	return updated, nil
}

func (u *UseCases) cascadeMaintenanceApproval(ctx context.Context, req *model.ApprovalRequest) {
	if req.MaintenanceRequestID.IsEmpty() {
		return
	}

	target, err := u.repo.Maintenance().Get(ctx, req.MaintenanceRequestID)
	if err != nil {
		// the linked request may have been deleted since the approval
		// was sent; the approval decision stands on its own
		logging.From(ctx).Warn("approval cascade target missing",
			"approval", req.ID,
			"maintenance", req.MaintenanceRequestID,
			"error", err.Error(),
		)
		return
	}

	target.Status = types.MaintenanceStatusApproved
	if _, err := u.repo.Maintenance().Update(ctx, target); err != nil {
		_ = errutil.Handle(ctx, err, "failed to cascade approval to maintenance request")
	}
}

// RejectRequest moves a request to Rejected with the landlord's notes.
// Rejecting a terminal request is a no-op. No cascade happens on reject.
func (u *UseCases) RejectRequest(ctx context.Context, id types.ID, notes string) (*model.ApprovalRequest, error) {
	req, err := u.repo.Approval().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get approval request", goerr.V("id", id))
	}
	if req.Status.IsTerminal() {
		return req, nil
	}

	now := u.now()
	req.Status = types.ApprovalStatusRejected
	req.ActionDate = &now
	if notes != "" {
		req.Notes = notes
	}
	updated, err := u.repo.Approval().Update(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update approval request", goerr.V("id", id))
	}
	return updated, nil
}
