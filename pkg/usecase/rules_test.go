package usecase

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

var evalNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func evaluate(snap *Snapshot, existing []*model.Notification) []*model.Notification {
	return evaluateRules(snap, existing, evalNow, defaultLeaseExpiryWindow, defaultDocumentExpiryWindow)
}

func TestOverdueReminderRule(t *testing.T) {
	property := &model.Property{ID: "prop-1", Address: "12 Baker Street"}

	t.Run("due yesterday fires", func(t *testing.T) {
		snap := &Snapshot{
			Reminders: []*model.Reminder{{
				ID:         "rem-1",
				PropertyID: property.ID,
				Task:       "Gas safety check",
				DueDate:    evalNow.AddDate(0, 0, -1),
			}},
			Properties: []*model.Property{property},
		}
		derived := evaluate(snap, nil)
		gt.Array(t, derived).Length(1)
		gt.Value(t, derived[0].Type).Equal(types.NotificationOverdueReminder)
		gt.Value(t, derived[0].Message).Equal(`Reminder "Gas safety check" for 12 Baker Street is overdue.`)
		gt.Value(t, derived[0].ParentID).Equal("rem-1")
		gt.Value(t, derived[0].LinkTo).Equal("/workflow?tab=reminders")
	})

	t.Run("due earlier today does not fire", func(t *testing.T) {
		snap := &Snapshot{Reminders: []*model.Reminder{{
			ID:      "rem-1",
			Task:    "Gas safety check",
			DueDate: evalNow.Add(-2 * time.Hour),
		}}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})

	t.Run("completed reminder never fires", func(t *testing.T) {
		snap := &Snapshot{Reminders: []*model.Reminder{{
			ID:          "rem-1",
			Task:        "Gas safety check",
			DueDate:     evalNow.AddDate(0, 0, -5),
			IsCompleted: true,
		}}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})

	t.Run("zero due date never fires", func(t *testing.T) {
		snap := &Snapshot{Reminders: []*model.Reminder{{ID: "rem-1", Task: "no date"}}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})

	t.Run("unknown property falls back to raw id", func(t *testing.T) {
		snap := &Snapshot{Reminders: []*model.Reminder{{
			ID:         "rem-1",
			PropertyID: "prop-missing",
			Task:       "Inspect roof",
			DueDate:    evalNow.AddDate(0, 0, -1),
		}}}
		derived := evaluate(snap, nil)
		gt.Array(t, derived).Length(1)
		gt.Value(t, derived[0].Message).Equal(`Reminder "Inspect roof" for prop-missing is overdue.`)
	})
}

func TestUrgentMaintenanceRule(t *testing.T) {
	newRequest := func(priority types.MaintenancePriority, reported time.Time) *model.MaintenanceRequest {
		return &model.MaintenanceRequest{
			ID:           "req-1",
			PropertyID:   "prop-1",
			IssueTitle:   "Burst pipe",
			Priority:     priority,
			ReportedDate: reported,
		}
	}

	t.Run("urgent reported today fires", func(t *testing.T) {
		snap := &Snapshot{
			Requests:   []*model.MaintenanceRequest{newRequest(types.MaintenancePriorityUrgent, evalNow.Add(-time.Hour))},
			Properties: []*model.Property{{ID: "prop-1", Address: "12 Baker Street"}},
		}
		derived := evaluate(snap, nil)
		gt.Array(t, derived).Length(1)
		gt.Value(t, derived[0].Type).Equal(types.NotificationNewUrgentMaintenance)
		gt.Value(t, derived[0].Message).Equal(`Urgent maintenance: "Burst pipe" reported for 12 Baker Street.`)
		gt.Value(t, derived[0].LinkTo).Equal("/maintenance?highlight=req-1")
	})

	t.Run("high priority fires too", func(t *testing.T) {
		snap := &Snapshot{Requests: []*model.MaintenanceRequest{newRequest(types.MaintenancePriorityHigh, evalNow)}}
		gt.Array(t, evaluate(snap, nil)).Length(1)
	})

	t.Run("medium priority does not fire", func(t *testing.T) {
		snap := &Snapshot{Requests: []*model.MaintenanceRequest{newRequest(types.MaintenancePriorityMedium, evalNow)}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})

	t.Run("reported yesterday does not fire", func(t *testing.T) {
		snap := &Snapshot{Requests: []*model.MaintenanceRequest{newRequest(types.MaintenancePriorityUrgent, evalNow.AddDate(0, 0, -1))}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})
}

func TestLeaseExpiryRule(t *testing.T) {
	newTenant := func(end time.Time) *model.Tenant {
		return &model.Tenant{ID: "ten-1", PropertyID: "prop-1", Name: "Alex Doe", LeaseEndDate: &end}
	}

	t.Run("lease ending within window fires", func(t *testing.T) {
		snap := &Snapshot{Tenants: []*model.Tenant{newTenant(evalNow.AddDate(0, 0, 30))}}
		derived := evaluate(snap, nil)
		gt.Array(t, derived).Length(1)
		gt.Value(t, derived[0].Type).Equal(types.NotificationLeaseExpirySoon)
		gt.Value(t, derived[0].ParentType).Equal(types.ParentTenant)
	})

	t.Run("exactly at the window edge fires", func(t *testing.T) {
		snap := &Snapshot{Tenants: []*model.Tenant{newTenant(evalNow.Add(defaultLeaseExpiryWindow))}}
		gt.Array(t, evaluate(snap, nil)).Length(1)
	})

	t.Run("beyond the window does not fire", func(t *testing.T) {
		snap := &Snapshot{Tenants: []*model.Tenant{newTenant(evalNow.Add(defaultLeaseExpiryWindow + time.Second))}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})

	t.Run("already ended lease does not fire", func(t *testing.T) {
		snap := &Snapshot{Tenants: []*model.Tenant{newTenant(evalNow.AddDate(0, 0, -1))}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})

	t.Run("no lease end date never fires", func(t *testing.T) {
		snap := &Snapshot{Tenants: []*model.Tenant{{ID: "ten-1", Name: "Alex Doe"}}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})
}

func TestDocumentExpiryRule(t *testing.T) {
	newDocument := func(expiry time.Time) *model.Document {
		return &model.Document{ID: "doc-1", Name: "EPC Certificate", ExpiryDate: &expiry}
	}

	t.Run("expiring within window fires", func(t *testing.T) {
		snap := &Snapshot{Documents: []*model.Document{newDocument(evalNow.AddDate(0, 0, 14))}}
		derived := evaluate(snap, nil)
		gt.Array(t, derived).Length(1)
		gt.Value(t, derived[0].Type).Equal(types.NotificationDocumentExpirySoon)
		gt.Value(t, derived[0].LinkTo).Equal("/documents")
	})

	t.Run("beyond window does not fire", func(t *testing.T) {
		snap := &Snapshot{Documents: []*model.Document{newDocument(evalNow.Add(defaultDocumentExpiryWindow + time.Hour))}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})

	t.Run("already expired does not fire", func(t *testing.T) {
		snap := &Snapshot{Documents: []*model.Document{newDocument(evalNow.AddDate(0, 0, -1))}}
		gt.Array(t, evaluate(snap, nil)).Length(0)
	})
}

func TestEvaluationDedup(t *testing.T) {
	snap := &Snapshot{Reminders: []*model.Reminder{{
		ID:      "rem-1",
		Task:    "Gas safety check",
		DueDate: evalNow.AddDate(0, 0, -3),
	}}}

	t.Run("existing entry suppresses re-derivation", func(t *testing.T) {
		first := evaluate(snap, nil)
		gt.Array(t, first).Length(1)
		gt.Array(t, evaluate(snap, first)).Length(0)
	})

	t.Run("read state does not matter", func(t *testing.T) {
		existing := []*model.Notification{{
			ID:       types.NewID(),
			Type:     types.NotificationOverdueReminder,
			ParentID: "rem-1",
			IsRead:   true,
		}}
		gt.Array(t, evaluate(snap, existing)).Length(0)
	})

	t.Run("same parent with different type still fires", func(t *testing.T) {
		existing := []*model.Notification{{
			ID:       types.NewID(),
			Type:     types.NotificationGeneralInfo,
			ParentID: "rem-1",
		}}
		gt.Array(t, evaluate(snap, existing)).Length(1)
	})
}
