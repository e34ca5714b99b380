package id

import "github.com/google/uuid"

// New returns a fresh unique entity ID.
func New() string {
	return uuid.NewString()
}
