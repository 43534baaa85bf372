package model

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// Reminder is a user-created property task with a due date
type Reminder struct {
	ID                types.ID
	PropertyID        types.ID
	Task              string
	DueDate           time.Time
	Frequency         string
	IsCompleted       bool
	LastCompletedDate *time.Time
	Notes             string
}
