// Package backup keeps timestamped, append-only copies of a file next to
// the original.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const Suffix = ".bak"

type Snapshot struct {
	Name string
	Path string
	Time time.Time
}

type Store struct {
	now func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// NewStoreWithClock is NewStore with a fixed time source.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// SnapshotName returns the file name of a snapshot of path taken at t.
func SnapshotName(path string, t time.Time) string {
	return filepath.Base(path) + "." + FormatTimestamp(t) + Suffix
}

// Snapshot copies path byte for byte to a new sibling snapshot and returns
// the snapshot's path. A missing source is not an error: there is nothing to
// protect and the returned path is empty.
func (s *Store) Snapshot(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: failed to open %s: %w", ErrBackupFailed, path, err)
	}
	defer src.Close()

	target := filepath.Join(filepath.Dir(path), SnapshotName(path, s.now()))

	// O_EXCL keeps existing snapshots immutable.
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create %s: %w", ErrBackupFailed, target, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return "", fmt.Errorf("%w: failed to copy %s: %w", ErrBackupFailed, path, err)
	}
	if err := dst.Sync(); err != nil {
		dst.Close()
		os.Remove(target)
		return "", fmt.Errorf("%w: failed to sync %s: %w", ErrBackupFailed, target, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("%w: failed to close %s: %w", ErrBackupFailed, target, err)
	}

	return target, nil
}

// List returns the snapshots of path, most recent first. Entries whose
// timestamp cannot be parsed are skipped, and a directory that cannot be read
// yields no snapshots.
func (s *Store) List(path string) []Snapshot {
	dir := filepath.Dir(path)
	prefix := filepath.Base(path) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var snapshots []Snapshot
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, Suffix) {
			continue
		}
		if len(name) < len(prefix)+len(Suffix) {
			continue
		}
		t, err := ParseTimestamp(name[len(prefix) : len(name)-len(Suffix)])
		if err != nil {
			continue
		}
		snapshots = append(snapshots, Snapshot{
			Name: name,
			Path: filepath.Join(dir, name),
			Time: t,
		})
	}

	slices.SortFunc(snapshots, func(a, b Snapshot) int {
		if c := b.Time.Compare(a.Time); c != 0 {
			return c
		}
		return strings.Compare(b.Name, a.Name)
	})
	return snapshots
}
