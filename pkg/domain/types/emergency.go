package types

import "fmt"

// Severity represents how severe an emergency incident is
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
)

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// IncidentStatus represents the lifecycle state of an emergency incident.
// Resolved is terminal.
type IncidentStatus string

const (
	IncidentStatusOpen     IncidentStatus = "Open"
	IncidentStatusResolved IncidentStatus = "Resolved"
)

// IsValid checks if the incident status is valid
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusOpen, IncidentStatusResolved:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transition
func (s IncidentStatus) IsTerminal() bool {
	return s == IncidentStatusResolved
}

// String returns the string representation of the incident status
func (s IncidentStatus) String() string {
	return string(s)
}

// ParseIncidentStatus parses a string into an IncidentStatus
func ParseIncidentStatus(s string) (IncidentStatus, error) {
	status := IncidentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid incident status: %s", s)
	}
	return status, nil
}
