package model

import "github.com/doorap-lab/doorap/pkg/domain/types"

// Property is the managed property record. This subsystem only reads it to
// format human-friendly alert messages.
type Property struct {
	ID        types.ID
	Address   string
	Postcode  string
	OwnerName string
}
