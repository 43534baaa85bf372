package model

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// Tenant represents a tenant occupying a property. Read-only input for
// alert derivation.
type Tenant struct {
	ID             types.ID
	PropertyID     types.ID
	Name           string
	Email          string
	Phone          string
	LeaseStartDate *time.Time
	LeaseEndDate   *time.Time
	RentAmount     *float64
	Notes          string
}
