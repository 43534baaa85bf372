package model

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// NotificationKey identifies at most one live notification per trigger:
// the (parent entity, notification type) pair.
type NotificationKey struct {
	ParentID types.ID
	Type     types.NotificationType
}

// Notification is a derived or user-created alert shown in the feed
type Notification struct {
	ID         types.ID
	Type       types.NotificationType
	Message    string
	ParentID   types.ID
	ParentType types.ParentType
	Date       time.Time
	IsRead     bool
	LinkTo     string
}

// Key returns the dedup key of the notification
func (n *Notification) Key() NotificationKey {
	return NotificationKey{ParentID: n.ParentID, Type: n.Type}
}
