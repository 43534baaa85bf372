package types

import "fmt"

// MaintenanceStatus represents the status of a maintenance request
type MaintenanceStatus string

const (
	MaintenanceStatusNew           MaintenanceStatus = "New"
	MaintenanceStatusAssessing     MaintenanceStatus = "Assessing"
	MaintenanceStatusPendingQuote  MaintenanceStatus = "Pending Quote"
	MaintenanceStatusQuoteReceived MaintenanceStatus = "Quote Received"
	MaintenanceStatusApproved      MaintenanceStatus = "Approved"
	MaintenanceStatusInProgress    MaintenanceStatus = "In Progress"
	MaintenanceStatusPendingReview MaintenanceStatus = "Pending Review"
	MaintenanceStatusCompleted     MaintenanceStatus = "Completed"
	MaintenanceStatusCancelled     MaintenanceStatus = "Cancelled"
	MaintenanceStatusInvoiced      MaintenanceStatus = "Invoiced"
	MaintenanceStatusPaid          MaintenanceStatus = "Paid"
)

// AllMaintenanceStatuses returns all valid maintenance statuses
func AllMaintenanceStatuses() []MaintenanceStatus {
	return []MaintenanceStatus{
		MaintenanceStatusNew,
		MaintenanceStatusAssessing,
		MaintenanceStatusPendingQuote,
		MaintenanceStatusQuoteReceived,
		MaintenanceStatusApproved,
		MaintenanceStatusInProgress,
		MaintenanceStatusPendingReview,
		MaintenanceStatusCompleted,
		MaintenanceStatusCancelled,
		MaintenanceStatusInvoiced,
		MaintenanceStatusPaid,
	}
}

// IsValid checks if the maintenance status is valid
func (s MaintenanceStatus) IsValid() bool {
	for _, v := range AllMaintenanceStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// String returns the string representation of the maintenance status
func (s MaintenanceStatus) String() string {
	return string(s)
}

// ParseMaintenanceStatus parses a string into a MaintenanceStatus
func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	status := MaintenanceStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid maintenance status: %s", s)
	}
	return status, nil
}

// MaintenancePriority represents the priority of a maintenance request
type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "Low"
	MaintenancePriorityMedium MaintenancePriority = "Medium"
	MaintenancePriorityHigh   MaintenancePriority = "High"
	MaintenancePriorityUrgent MaintenancePriority = "Urgent"
)

// AllMaintenancePriorities returns all valid maintenance priorities
func AllMaintenancePriorities() []MaintenancePriority {
	return []MaintenancePriority{
		MaintenancePriorityLow,
		MaintenancePriorityMedium,
		MaintenancePriorityHigh,
		MaintenancePriorityUrgent,
	}
}

// IsValid checks if the maintenance priority is valid
func (p MaintenancePriority) IsValid() bool {
	switch p {
	case MaintenancePriorityLow,
		MaintenancePriorityMedium,
		MaintenancePriorityHigh,
		MaintenancePriorityUrgent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the maintenance priority
func (p MaintenancePriority) String() string {
	return string(p)
}

// ParseMaintenancePriority parses a string into a MaintenancePriority
func ParseMaintenancePriority(s string) (MaintenancePriority, error) {
	p := MaintenancePriority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid maintenance priority: %s", s)
	}
	return p, nil
}
