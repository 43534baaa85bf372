package types

import "fmt"

// ApprovalStatus represents the status of a landlord approval request.
// Approved and Rejected are terminal: no transition leaves them.
type ApprovalStatus string

const (
	ApprovalStatusSent     ApprovalStatus = "Sent"
	ApprovalStatusViewed   ApprovalStatus = "Viewed"
	ApprovalStatusApproved ApprovalStatus = "Approved"
	ApprovalStatusRejected ApprovalStatus = "Rejected"
)

// AllApprovalStatuses returns all valid approval statuses
func AllApprovalStatuses() []ApprovalStatus {
	return []ApprovalStatus{
		ApprovalStatusSent,
		ApprovalStatusViewed,
		ApprovalStatusApproved,
		ApprovalStatusRejected,
	}
}

// IsValid checks if the approval status is valid
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusSent, ApprovalStatusViewed, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transition
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// String returns the string representation of the approval status
func (s ApprovalStatus) String() string {
	return string(s)
}

// ParseApprovalStatus parses a string into an ApprovalStatus
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	status := ApprovalStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid approval status: %s", s)
	}
	return status, nil
}

// ApprovalType represents the kind of approval requested from a landlord
type ApprovalType string

const (
	ApprovalTypeMaintenanceQuote      ApprovalType = "Maintenance Quote"
	ApprovalTypeLeaseRenewal          ApprovalType = "Lease Renewal"
	ApprovalTypeComplianceCertificate ApprovalType = "Compliance Certificate"
	ApprovalTypeOther                 ApprovalType = "Other"
)

// IsValid checks if the approval type is valid
func (t ApprovalType) IsValid() bool {
	switch t {
	case ApprovalTypeMaintenanceQuote, ApprovalTypeLeaseRenewal, ApprovalTypeComplianceCertificate, ApprovalTypeOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the approval type
func (t ApprovalType) String() string {
	return string(t)
}
