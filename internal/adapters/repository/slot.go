// Package repository defines the persistence slot interface and the
// skill store built on top of it.
package repository

import "context"

// Slot is a single named key-value cell, the persistence contract the
// rest of the application depends on. It stores one opaque payload and
// models local browser-style storage: a read either finds the payload
// or reports absence.
type Slot interface {
	// Get returns the stored payload. The second return reports whether
	// the slot currently holds a value.
	Get(ctx context.Context) ([]byte, bool, error)

	// Set overwrites the payload in a single write.
	Set(ctx context.Context, value []byte) error
}
