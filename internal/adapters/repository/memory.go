package repository

import (
	"context"
	"sync"
)

// MemorySlot implements Slot with an in-process buffer. It is the
// default backend for embedded use and for tests.
type MemorySlot struct {
	mu    sync.RWMutex
	value []byte
	set   bool
}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Get returns a copy of the stored payload so callers cannot alias the
// internal buffer.
func (s *MemorySlot) Get(_ context.Context) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return nil, false, nil
	}
	out := make([]byte, len(s.value))
	copy(out, s.value)
	return out, true, nil
}

// Set overwrites the payload.
func (s *MemorySlot) Set(_ context.Context, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = make([]byte, len(value))
	copy(s.value, value)
	s.set = true
	return nil
}
