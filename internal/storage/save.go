package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cursor-reset/cursor-reset/internal/identity"
)

// EnsureDir creates the directory holding path.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create identity record directory: %w", err)
	}
	return nil
}

// MergeAndSave sets the owned keys of record to triple and writes the whole
// record to path in place. Every other key is written back unchanged.
// Callers snapshot path before calling it.
func MergeAndSave(record Record, triple identity.Triple, path string) error {
	if record == nil {
		record = Record{}
	}
	record.Apply(triple)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("%w: failed to marshal record: %w", ErrWriteFailed, err)
	}

	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err := os.WriteFile(path, bytes.TrimRight(buf.Bytes(), "\n"), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}
