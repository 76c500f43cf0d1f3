package repository

import "errors"

// Sentinel kinds for persistence errors.
var (
	ErrEmptyPath     = errors.New("storage path must not be empty")
	ErrEmptySlotName = errors.New("slot name must not be empty")
	ErrNilSlot       = errors.New("slot must not be nil")
)
