package model

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// MaintenanceRequest represents a reported maintenance issue for a property
type MaintenanceRequest struct {
	ID               types.ID
	PropertyID       types.ID
	TenantID         types.ID
	IssueTitle       string
	Description      string
	ReportedDate     time.Time
	Status           types.MaintenanceStatus
	Priority         types.MaintenancePriority
	AssignedProvider string
	QuoteAmount      *float64
	CompletionDate   *time.Time
	Notes            string
}
