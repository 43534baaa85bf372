package model

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// DoriAction is a suggested action from the Dori concierge awaiting a
// human decision. Approved/Rejected are terminal.
type DoriAction struct {
	ID              types.ID
	Title           string
	Description     string
	Type            types.ActionType
	Status          types.ActionStatus
	ConfidenceScore int
	SuggestedAt     time.Time
	RelatedEntityID types.ID
}

// DoriExecutionStep is one timestamped step within an execution record
type DoriExecutionStep struct {
	ID          types.ID
	Timestamp   time.Time
	Description string
	Status      types.StepStatus
}

// DoriExecution is an append-only audit record of one automated or
// semi-automated workflow run.
type DoriExecution struct {
	ID           types.ID
	WorkflowName string
	EntityName   string
	EntityRole   string
	Status       types.ExecutionStatus
	StartTime    time.Time
	Steps        []DoriExecutionStep
}

// AppendStep adds a step to the execution, clamping its timestamp so step
// timestamps stay non-decreasing in append order.
func (e *DoriExecution) AppendStep(step DoriExecutionStep) {
	if n := len(e.Steps); n > 0 {
		if last := e.Steps[n-1].Timestamp; step.Timestamp.Before(last) {
			step.Timestamp = last
		}
	}
	e.Steps = append(e.Steps, step)
}
