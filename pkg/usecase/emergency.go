package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
	"github.com/doorap-lab/doorap/pkg/utils/async"
	"github.com/doorap-lab/doorap/pkg/utils/errutil"
)

// OpenIncidents returns unresolved emergency incidents, newest first
func (u *UseCases) OpenIncidents(ctx context.Context) ([]*model.EmergencyItem, error) {
	items, err := u.repo.Emergency().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list emergencies")
	}
	open := make([]*model.EmergencyItem, 0, len(items))
	for _, item := range items {
		if item.Status == types.IncidentStatusOpen {
			open = append(open, item)
		}
	}
	return open, nil
}

// ReportIncident records a new emergency incident
func (u *UseCases) ReportIncident(ctx context.Context, item *model.EmergencyItem) (*model.EmergencyItem, error) {
	if item.Status == "" {
		item.Status = types.IncidentStatusOpen
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = u.now()
	}
	created, err := u.repo.Emergency().Create(ctx, item)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create emergency")
	}
	return created, nil
}

// EnsureChecklist returns the incident with its remediation checklist,
// generating it on first access. Generation happens at most once per
// incident: concurrent callers share one in-flight generation, and a
// checklist already present is never regenerated. On generator failure the
// checklist stays absent and the incident is returned as-is, so resolution
// remains possible without steps.
func (u *UseCases) EnsureChecklist(ctx context.Context, id types.ID) (*model.EmergencyItem, error) {
	item, err := u.repo.Emergency().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get emergency", goerr.V("id", id))
	}
	if item.HasChecklist() || u.generator == nil {
		return item, nil
	}

	v, err, _ := u.checklistFlights.Do(string(id), func() (any, error) {
		// detached so a torn-down caller does not drop the generated
		// checklist for everyone waiting on it
		genCtx := async.Detach(ctx)

		current, err := u.repo.Emergency().Get(genCtx, id)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get emergency", goerr.V("id", id))
		}
		if current.HasChecklist() {
			return current, nil
		}

		labels, err := u.generator.GenerateSteps(genCtx, current.Title, current.Description)
		if err != nil {
			_ = errutil.Handle(genCtx, err, "failed to generate emergency checklist")
			return current, nil
		}

		current.Checklist = model.NewChecklist(labels)
		updated, err := u.repo.Emergency().Update(genCtx, current)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to store emergency checklist", goerr.V("id", id))
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.EmergencyItem), nil
}

// ToggleChecklistStep flips the checked flag of one checklist item. An
// out-of-range index leaves the incident unchanged.
func (u *UseCases) ToggleChecklistStep(ctx context.Context, id types.ID, index int) (*model.EmergencyItem, error) {
	item, err := u.repo.Emergency().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get emergency", goerr.V("id", id))
	}
	if index < 0 || index >= len(item.Checklist) {
		return item, nil
	}
	item.ToggleStep(index)
	updated, err := u.repo.Emergency().Update(ctx, item)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update emergency", goerr.V("id", id))
	}
	return updated, nil
}

// ResolveIncident closes an open incident and appends the resolution audit
// record built from the checked checklist steps and the given notes. The
// state change and the audit append are two separate writes. Resolving an
// already resolved incident changes nothing and appends nothing.
func (u *UseCases) ResolveIncident(ctx context.Context, id types.ID, notes string) (*model.EmergencyItem, *model.DoriExecution, error) {
	item, err := u.repo.Emergency().Get(ctx, id)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to get emergency", goerr.V("id", id))
	}
	if item.Status.IsTerminal() {
		return item, nil, nil
	}

	item.Status = types.IncidentStatusResolved
	updated, err := u.repo.Emergency().Update(ctx, item)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to update emergency", goerr.V("id", id))
	}

	exec, err := u.RecordResolution(ctx, updated, updated.CheckedLabels(), notes)
	if err != nil {
		return updated, nil, err
	}
	return updated, exec, nil
}
