package model

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// ApprovalRequest is a decision request sent to a landlord. Its status
// moves monotonically from Sent (optionally via Viewed) to Approved or
// Rejected and never leaves a terminal state.
type ApprovalRequest struct {
	ID                   types.ID
	LandlordID           types.ID
	Type                 types.ApprovalType
	Title                string
	Description          string
	Amount               *float64
	DocumentURL          string
	Status               types.ApprovalStatus
	SentDate             time.Time
	ViewedDate           *time.Time
	ActionDate           *time.Time
	Notes                string
	MaintenanceRequestID types.ID
}
