package model

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// ChecklistItem is one remediation step of an emergency checklist
type ChecklistItem struct {
	Label   string
	Checked bool
}

// EmergencyItem is a critical incident surfaced by the Dori concierge.
// Checklist is nil until generated once; after that only the Checked flag
// of individual items changes.
type EmergencyItem struct {
	ID          types.ID
	Title       string
	Description string
	Severity    types.Severity
	Status      types.IncidentStatus
	Timestamp   time.Time
	RelatedID   types.ID
	Checklist   []ChecklistItem
}

// HasChecklist reports whether the checklist has been generated
func (e *EmergencyItem) HasChecklist() bool {
	return e.Checklist != nil
}

// ToggleStep flips the Checked flag of the item at index. Out-of-range
// indexes are ignored. Length and order of the checklist never change.
func (e *EmergencyItem) ToggleStep(index int) {
	if index < 0 || index >= len(e.Checklist) {
		return
	}
	e.Checklist[index].Checked = !e.Checklist[index].Checked
}

// CheckedLabels returns the labels of all checked items in checklist order
func (e *EmergencyItem) CheckedLabels() []string {
	labels := make([]string, 0, len(e.Checklist))
	for _, item := range e.Checklist {
		if item.Checked {
			labels = append(labels, item.Label)
		}
	}
	return labels
}

// NewChecklist builds an unchecked checklist from generated step labels
func NewChecklist(labels []string) []ChecklistItem {
	items := make([]ChecklistItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, ChecklistItem{Label: label})
	}
	return items
}
