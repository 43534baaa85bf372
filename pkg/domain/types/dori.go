package types

import "fmt"

// ActionStatus represents the review status of a Dori suggested action.
// Approved and Rejected are terminal.
type ActionStatus string

const (
	ActionStatusPending  ActionStatus = "Pending"
	ActionStatusApproved ActionStatus = "Approved"
	ActionStatusRejected ActionStatus = "Rejected"
)

// AllActionStatuses returns all valid action statuses
func AllActionStatuses() []ActionStatus {
	return []ActionStatus{
		ActionStatusPending,
		ActionStatusApproved,
		ActionStatusRejected,
	}
}

// IsValid checks if the action status is valid
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending, ActionStatusApproved, ActionStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transition
func (s ActionStatus) IsTerminal() bool {
	return s == ActionStatusApproved || s == ActionStatusRejected
}

// String returns the string representation of the action status
func (s ActionStatus) String() string {
	return string(s)
}

// ParseActionStatus parses a string into an ActionStatus
func ParseActionStatus(s string) (ActionStatus, error) {
	status := ActionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid action status: %s", s)
	}
	return status, nil
}

// ActionType represents the category of a Dori suggested action
type ActionType string

const (
	ActionTypeMaintenance   ActionType = "Maintenance"
	ActionTypeCommunication ActionType = "Communication"
	ActionTypeAdmin         ActionType = "Admin"
)

// IsValid checks if the action type is valid
func (t ActionType) IsValid() bool {
	switch t {
	case ActionTypeMaintenance, ActionTypeCommunication, ActionTypeAdmin:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action type
func (t ActionType) String() string {
	return string(t)
}

// ExecutionStatus represents the overall status of a workflow execution
type ExecutionStatus string

const (
	ExecutionStatusRunning   ExecutionStatus = "Running"
	ExecutionStatusCompleted ExecutionStatus = "Completed"
	ExecutionStatusCancelled ExecutionStatus = "Cancelled"
	ExecutionStatusFailed    ExecutionStatus = "Failed"
	ExecutionStatusWaiting   ExecutionStatus = "Waiting"
)

// AllExecutionStatuses returns all valid execution statuses
func AllExecutionStatuses() []ExecutionStatus {
	return []ExecutionStatus{
		ExecutionStatusRunning,
		ExecutionStatusCompleted,
		ExecutionStatusCancelled,
		ExecutionStatusFailed,
		ExecutionStatusWaiting,
	}
}

// IsValid checks if the execution status is valid
func (s ExecutionStatus) IsValid() bool {
	switch s {
	case ExecutionStatusRunning,
		ExecutionStatusCompleted,
		ExecutionStatusCancelled,
		ExecutionStatusFailed,
		ExecutionStatusWaiting:
		return true
	default:
		return false
	}
}

// String returns the string representation of the execution status
func (s ExecutionStatus) String() string {
	return string(s)
}

// ParseExecutionStatus parses a string into an ExecutionStatus
func ParseExecutionStatus(s string) (ExecutionStatus, error) {
	status := ExecutionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid execution status: %s", s)
	}
	return status, nil
}

// StepStatus represents the status of a single execution step
type StepStatus string

const (
	StepStatusPending   StepStatus = "Pending"
	StepStatusCompleted StepStatus = "Completed"
	StepStatusSkipped   StepStatus = "Skipped"
	StepStatusFailed    StepStatus = "Failed"
)

// IsValid checks if the step status is valid
func (s StepStatus) IsValid() bool {
	switch s {
	case StepStatusPending, StepStatusCompleted, StepStatusSkipped, StepStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the step status
func (s StepStatus) String() string {
	return string(s)
}
