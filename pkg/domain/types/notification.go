package types

import "fmt"

// NotificationType represents the trigger category of a notification
type NotificationType string

const (
	NotificationOverdueReminder      NotificationType = "Overdue Reminder"
	NotificationLeaseExpirySoon      NotificationType = "Lease Expiry Soon"
	NotificationNewUrgentMaintenance NotificationType = "New Urgent Maintenance"
	NotificationDocumentExpirySoon   NotificationType = "Document Expiry Soon"
	NotificationGeneralInfo          NotificationType = "General Info"
)

// AllNotificationTypes returns all valid notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		NotificationOverdueReminder,
		NotificationLeaseExpirySoon,
		NotificationNewUrgentMaintenance,
		NotificationDocumentExpirySoon,
		NotificationGeneralInfo,
	}
}

// IsValid checks if the notification type is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationOverdueReminder,
		NotificationLeaseExpirySoon,
		NotificationNewUrgentMaintenance,
		NotificationDocumentExpirySoon,
		NotificationGeneralInfo:
		return true
	default:
		return false
	}
}

// String returns the string representation of the notification type
func (t NotificationType) String() string {
	return string(t)
}

// ParseNotificationType parses a string into a NotificationType
func ParseNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}

// ParentType identifies which entity collection a notification points back to
type ParentType string

const (
	ParentReminder    ParentType = "reminder"
	ParentMaintenance ParentType = "maintenance_request"
	ParentTenant      ParentType = "tenant"
	ParentDocument    ParentType = "document"
	ParentGeneral     ParentType = "general"
)

// IsValid checks if the parent type is valid
func (t ParentType) IsValid() bool {
	switch t {
	case ParentReminder, ParentMaintenance, ParentTenant, ParentDocument, ParentGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation of the parent type
func (t ParentType) String() string {
	return string(t)
}
