package lister

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/vvka-141/picview/internal/files/filesystem"
	"github.com/vvka-141/picview/internal/natsort"
	"github.com/vvka-141/picview/pkg/picview"
)

// Lister implements picview.DirectoryLister over a filesystem provider.
// Lister holds no mutable state and is safe for concurrent use.
type Lister struct {
	fsProvider filesystem.FileSystemProvider
	logger     picview.Logger
}

// NewLister creates a lister over the OS filesystem.
// Panics if logger is nil.
func NewLister(logger picview.Logger) *Lister {
	return NewListerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewListerWithFS creates a lister with a custom filesystem provider.
// Panics if fsProvider or logger is nil.
func NewListerWithFS(fsProvider filesystem.FileSystemProvider, logger picview.Logger) *Lister {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Lister{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// List returns the entries of basePath, or of its parent when basePath is
// not a directory. The result is never nil.
func (l *Lister) List(ctx context.Context, basePath string) []picview.PathItem {
	items := []picview.PathItem{}
	if err := ctx.Err(); err != nil {
		return items
	}

	dir := l.Resolve(basePath)
	entries, err := l.fsProvider.ReadDir(dir)
	if err != nil {
		if len(entries) == 0 {
			l.logger.Verbose("Cannot list %s: %v", dir, err)
			return items
		}
		l.logger.Verbose("Listing of %s stopped early after %d entries: %v", dir, len(entries), err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		// Stat rather than entry.IsDir so symlinked directories count as directories
		info, err := l.fsProvider.Stat(entryPath)
		if err != nil {
			l.logger.Verbose("Skipping %s: %v", entryPath, err)
			continue
		}

		if info.IsDir() {
			items = append(items, picview.PathItem{IsDirectory: true, Path: entryPath})
			continue
		}
		// A dotfile such as ".png" has no extension, only a name
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != name && picview.IsSupportedExtension(ext) {
			items = append(items, picview.PathItem{Path: entryPath})
		}
	}

	SortPathItems(items)
	return items
}

// Resolve returns the directory List scans for basePath: basePath itself
// when it is a directory, otherwise its parent.
func (l *Lister) Resolve(basePath string) string {
	info, err := l.fsProvider.Stat(basePath)
	if err == nil && info.IsDir() {
		return basePath
	}
	return Parent(basePath)
}

// Parent implements picview.DirectoryLister.
func (l *Lister) Parent(path string) string {
	return Parent(path)
}

// Parent returns the parent directory of path. A path without a parent,
// such as a filesystem root, is returned unchanged.
//
//	"/x/y"      → "/x"
//	"/x/y/"     → "/x"
//	"photo.png" → "."
//	"/"         → "/"
func Parent(path string) string {
	cleaned := filepath.Clean(path)
	parent := filepath.Dir(cleaned)
	if parent == cleaned {
		return path
	}
	return parent
}

// SortPathItems orders items in place: directories before files, then
// natural order of the path. The sort is stable.
func SortPathItems(items []picview.PathItem) {
	slices.SortStableFunc(items, comparePathItems)
}

func comparePathItems(a, b picview.PathItem) int {
	if a.IsDirectory != b.IsDirectory {
		if a.IsDirectory {
			return -1
		}
		return 1
	}
	return natsort.Compare(a.Path, b.Path)
}

// Verify Lister implements the interface at compile time
var _ picview.DirectoryLister = (*Lister)(nil)
