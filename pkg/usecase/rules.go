package usecase

import (
	"fmt"
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// Snapshot is a consistent read of all alert-relevant entities
type Snapshot struct {
	Reminders  []*model.Reminder
	Requests   []*model.MaintenanceRequest
	Tenants    []*model.Tenant
	Documents  []*model.Document
	Properties []*model.Property
}

func (s *Snapshot) propertyAddress(id types.ID) string {
	for _, p := range s.Properties {
		if p.ID == id {
			return p.Address
		}
	}
	// fall back to the raw id so the message still identifies the property
	return string(id)
}

// sameCalendarDay reports whether a and b fall on the same calendar day
// in the evaluation time zone.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// evaluateRules derives the notifications implied by the snapshot at the
// given instant. It is pure: no repository access, no clock access. The
// existing feed suppresses duplicates by (parent, type) key regardless of
// read state, so re-evaluating an unchanged snapshot adds nothing.
func evaluateRules(snap *Snapshot, existing []*model.Notification, now time.Time, leaseWindow, documentWindow time.Duration) []*model.Notification {
	seen := make(map[model.NotificationKey]bool, len(existing))
	for _, n := range existing {
		seen[n.Key()] = true
	}

	var derived []*model.Notification
	add := func(n *model.Notification) {
		if seen[n.Key()] {
			return
		}
		seen[n.Key()] = true
		n.Date = now
		derived = append(derived, n)
	}

	for _, r := range snap.Reminders {
		if r.IsCompleted || r.DueDate.IsZero() {
			continue
		}
		if !r.DueDate.Before(startOfDay(now)) {
			continue
		}
		add(&model.Notification{
			Type:       types.NotificationOverdueReminder,
			Message:    fmt.Sprintf("Reminder %q for %s is overdue.", r.Task, snap.propertyAddress(r.PropertyID)),
			ParentID:   r.ID,
			ParentType: types.ParentReminder,
			LinkTo:     "/workflow?tab=reminders",
		})
	}

	for _, req := range snap.Requests {
		if req.Priority != types.MaintenancePriorityUrgent && req.Priority != types.MaintenancePriorityHigh {
			continue
		}
		if req.ReportedDate.IsZero() || !sameCalendarDay(req.ReportedDate, now) {
			continue
		}
		add(&model.Notification{
			Type:       types.NotificationNewUrgentMaintenance,
			Message:    fmt.Sprintf("%s maintenance: %q reported for %s.", req.Priority, req.IssueTitle, snap.propertyAddress(req.PropertyID)),
			ParentID:   req.ID,
			ParentType: types.ParentMaintenance,
			LinkTo:     fmt.Sprintf("/maintenance?highlight=%s", req.ID),
		})
	}

	for _, tenant := range snap.Tenants {
		if tenant.LeaseEndDate == nil || tenant.LeaseEndDate.IsZero() {
			continue
		}
		end := *tenant.LeaseEndDate
		if !end.After(now) || end.After(now.Add(leaseWindow)) {
			continue
		}
		add(&model.Notification{
			Type:       types.NotificationLeaseExpirySoon,
			Message:    fmt.Sprintf("Lease for %s at %s ends on %s.", tenant.Name, snap.propertyAddress(tenant.PropertyID), end.Format("2 Jan 2006")),
			ParentID:   tenant.ID,
			ParentType: types.ParentTenant,
			LinkTo:     fmt.Sprintf("/tenants?highlight=%s", tenant.ID),
		})
	}

	for _, doc := range snap.Documents {
		if doc.ExpiryDate == nil || doc.ExpiryDate.IsZero() {
			continue
		}
		expiry := *doc.ExpiryDate
		if !expiry.After(now) || expiry.After(now.Add(documentWindow)) {
			continue
		}
		add(&model.Notification{
			Type:       types.NotificationDocumentExpirySoon,
			Message:    fmt.Sprintf("Document %q expires on %s.", doc.Name, expiry.Format("2 Jan 2006")),
			ParentID:   doc.ID,
			ParentType: types.ParentDocument,
			LinkTo:     "/documents",
		})
	}

	return derived
}
