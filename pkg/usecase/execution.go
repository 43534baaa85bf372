package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// ExecutionFilter narrows the execution feed. Text matches workflow and
// entity names case-insensitively; an empty Status matches everything.
type ExecutionFilter struct {
	Text   string
	Status types.ExecutionStatus
}

func (f ExecutionFilter) matches(exec *model.DoriExecution) bool {
	if f.Status != "" && exec.Status != f.Status {
		return false
	}
	if f.Text != "" {
		text := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(exec.WorkflowName), text) &&
			!strings.Contains(strings.ToLower(exec.EntityName), text) {
			return false
		}
	}
	return true
}

// ListExecutions returns the audit log filtered by the given criteria
func (u *UseCases) ListExecutions(ctx context.Context, filter ExecutionFilter) ([]*model.DoriExecution, error) {
	executions, err := u.repo.Execution().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list executions")
	}
	filtered := make([]*model.DoriExecution, 0, len(executions))
	for _, exec := range executions {
		if filter.matches(exec) {
			filtered = append(filtered, exec)
		}
	}
	return filtered, nil
}

// ListPendingActions returns suggested actions still awaiting a decision
func (u *UseCases) ListPendingActions(ctx context.Context) ([]*model.DoriAction, error) {
	actions, err := u.repo.DoriAction().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list actions")
	}
	pending := make([]*model.DoriAction, 0, len(actions))
	for _, action := range actions {
		if !action.Status.IsTerminal() {
			pending = append(pending, action)
		}
	}
	return pending, nil
}

// RecordDecision applies a human decision to a suggested action and appends
// the matching audit record. Deciding an already decided action is a no-op
// and returns nil without appending anything.
func (u *UseCases) RecordDecision(ctx context.Context, actionID types.ID, approve bool) (*model.DoriExecution, error) {
	action, err := u.repo.DoriAction().Get(ctx, actionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get action", goerr.V("id", actionID))
	}
	if action.Status.IsTerminal() {
		return nil, nil
	}

	now := u.now()

	exec := &model.DoriExecution{
		WorkflowName: fmt.Sprintf("%s Queue", action.Type),
		EntityName:   action.Title,
		EntityRole:   string(action.Type),
		StartTime:    now,
	}

	if approve {
		action.Status = types.ActionStatusApproved
		exec.Status = types.ExecutionStatusCompleted
		exec.AppendStep(model.DoriExecutionStep{
			Timestamp:   now,
			Description: fmt.Sprintf("Action %q approved by property manager.", action.Title),
			Status:      types.StepStatusCompleted,
		})
	} else {
		action.Status = types.ActionStatusRejected
		exec.Status = types.ExecutionStatusCancelled
		exec.AppendStep(model.DoriExecutionStep{
			Timestamp:   now,
			Description: fmt.Sprintf("Action %q cancelled by property manager.", action.Title),
			Status:      types.StepStatusSkipped,
		})
	}

	if _, err := u.repo.DoriAction().Update(ctx, action); err != nil {
		return nil, goerr.Wrap(err, "failed to update action", goerr.V("id", actionID))
	}
	appended, err := u.repo.Execution().Append(ctx, exec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append execution", goerr.V("action", actionID))
	}
	return appended, nil
}

// RecordResolution appends the audit record of a resolved emergency: one
// completed step per remediation step actually taken, then a closing step
// carrying the resolution notes.
func (u *UseCases) RecordResolution(ctx context.Context, incident *model.EmergencyItem, stepsTaken []string, notes string) (*model.DoriExecution, error) {
	now := u.now()

	exec := &model.DoriExecution{
		WorkflowName: "Emergency Response",
		EntityName:   incident.Title,
		EntityRole:   string(incident.Severity),
		Status:       types.ExecutionStatusCompleted,
		StartTime:    now,
	}
	for _, step := range stepsTaken {
		exec.AppendStep(model.DoriExecutionStep{
			Timestamp:   now,
			Description: step,
			Status:      types.StepStatusCompleted,
		})
	}
	closing := "Critical Incident Resolved"
	if notes != "" {
		closing = fmt.Sprintf("Critical Incident Resolved: %s", notes)
	}
	exec.AppendStep(model.DoriExecutionStep{
		Timestamp:   now,
		Description: closing,
		Status:      types.StepStatusCompleted,
	})

	appended, err := u.repo.Execution().Append(ctx, exec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append execution", goerr.V("incident", incident.ID))
	}
	return appended, nil
}
