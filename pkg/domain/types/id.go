package types

import "github.com/google/uuid"

// ID is the unique identifier for an entity
type ID string

// NewID generates a new random ID
func NewID() ID {
	return ID(uuid.NewString())
}

// String returns the string representation of the ID
func (i ID) String() string {
	return string(i)
}

// IsEmpty checks if the ID is empty
func (i ID) IsEmpty() bool {
	return i == ""
}
