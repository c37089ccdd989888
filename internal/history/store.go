// Package history persists the most recently opened path as a one-line text
// file in the application data directory.
package history

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/picview/internal/files/filesystem"
	"github.com/vvka-141/picview/pkg/picview"
)

// Store implements picview.HistoryStore over a filesystem provider.
// Concurrent writers race with last-write-wins semantics.
type Store struct {
	fsProvider filesystem.FileSystemProvider
	path       string
}

// NewStore creates a history store in dataDir on the OS filesystem.
func NewStore(dataDir string) *Store {
	return NewStoreWithFS(filesystem.NewOSFileSystem(), dataDir)
}

// NewStoreWithFS creates a history store with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewStoreWithFS(fsProvider filesystem.FileSystemProvider, dataDir string) *Store {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Store{
		fsProvider: fsProvider,
		path:       filepath.Join(dataDir, picview.HistoryFileName),
	}
}

// Path returns the location of the history file.
func (s *Store) Path() string {
	return s.path
}

// Read returns the stored path with surrounding whitespace trimmed.
// When the file cannot be read it is regenerated empty and "" is returned.
func (s *Store) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := s.fsProvider.ReadFile(s.path)
	if err == nil {
		return strings.TrimSpace(string(content)), nil
	}

	if err := s.replace(""); err != nil {
		return "", fmt.Errorf("%w: %w", picview.ErrHistoryUnavailable, err)
	}
	return "", nil
}

// Write replaces the stored path, creating the data directory on demand.
func (s *Store) Write(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.replace(path); err != nil {
		return fmt.Errorf("%w: %w", picview.ErrHistoryWrite, err)
	}
	return nil
}

func (s *Store) replace(content string) error {
	if err := s.fsProvider.MkdirAll(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return s.fsProvider.WriteFile(s.path, []byte(content))
}

// Verify Store implements the interface at compile time
var _ picview.HistoryStore = (*Store)(nil)
