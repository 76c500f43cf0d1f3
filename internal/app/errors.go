package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrNilStore      = errors.New("store must not be nil")
)
