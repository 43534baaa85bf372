package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

func TestApprovalStatus(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		gt.Bool(t, types.ApprovalStatusApproved.IsTerminal()).True()
		gt.Bool(t, types.ApprovalStatusRejected.IsTerminal()).True()
		gt.Bool(t, types.ApprovalStatusSent.IsTerminal()).False()
		gt.Bool(t, types.ApprovalStatusViewed.IsTerminal()).False()
	})

	t.Run("parse valid status", func(t *testing.T) {
		s, err := types.ParseApprovalStatus("Viewed")
		gt.NoError(t, err)
		gt.Value(t, s).Equal(types.ApprovalStatusViewed)
	})

	t.Run("parse invalid status", func(t *testing.T) {
		_, err := types.ParseApprovalStatus("Draft")
		gt.Error(t, err)
	})
}

func TestActionStatus(t *testing.T) {
	t.Run("pending is not terminal", func(t *testing.T) {
		gt.Bool(t, types.ActionStatusPending.IsTerminal()).False()
		gt.Bool(t, types.ActionStatusApproved.IsTerminal()).True()
		gt.Bool(t, types.ActionStatusRejected.IsTerminal()).True()
	})

	t.Run("all statuses are valid", func(t *testing.T) {
		for _, s := range types.AllActionStatuses() {
			gt.Bool(t, s.IsValid()).True()
		}
	})
}

func TestExecutionStatus(t *testing.T) {
	for _, s := range types.AllExecutionStatuses() {
		gt.Bool(t, s.IsValid()).True()
	}
	gt.Bool(t, types.ExecutionStatus("Done").IsValid()).False()
}

func TestIncidentStatus(t *testing.T) {
	gt.Bool(t, types.IncidentStatusResolved.IsTerminal()).True()
	gt.Bool(t, types.IncidentStatusOpen.IsTerminal()).False()

	_, err := types.ParseIncidentStatus("Closed")
	gt.Error(t, err)
}

func TestNotificationType(t *testing.T) {
	for _, typ := range types.AllNotificationTypes() {
		gt.Bool(t, typ.IsValid()).True()
	}
	gt.Bool(t, types.NotificationType("Rent Due").IsValid()).False()
}
