package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	slotFilePermission = 0600
	slotDirPermission  = 0750
)

// FileSlot implements Slot with a single file on disk. Writes go
// through a temp file followed by a rename so readers never observe a
// partial payload.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file-backed slot at path, creating parent
// directories as needed.
func NewFileSlot(path string) (*FileSlot, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, slotDirPermission); err != nil {
			return nil, fmt.Errorf("create slot directory: %w", err)
		}
	}
	return &FileSlot{path: path}, nil
}

// Get reads the whole file. A missing file reports an empty slot.
func (s *FileSlot) Get(_ context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read slot file: %w", err)
	}
	return data, true, nil
}

// Set writes the payload atomically via rename.
func (s *FileSlot) Set(_ context.Context, value []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp slot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp slot file: %w", err)
	}
	if err := os.Chmod(tmpName, slotFilePermission); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp slot file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}
