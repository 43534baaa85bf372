package model

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// Document is a stored file attached to another entity. Only the metadata
// is held here; file storage lives elsewhere.
type Document struct {
	ID         types.ID
	ParentID   types.ID
	ParentType string
	Name       string
	Type       string
	UploadDate time.Time
	ExpiryDate *time.Time
	Notes      string
}
