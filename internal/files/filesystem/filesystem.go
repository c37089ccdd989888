package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry from the standard library.
type DirEntry = fs.DirEntry

// FileSystemProvider is the filesystem surface the listing, loading and
// history components work against. Paths are host paths.
type FileSystemProvider interface {
	// ReadDir reads the immediate entries of the directory at path, sorted
	// by name. On failure it may return the entries read before the error
	// together with a non-nil error.
	ReadDir(path string) ([]DirEntry, error)

	// Stat returns file information for the given path, following symlinks.
	Stat(path string) (FileInfo, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of the file at path, creating it if
	// needed. The parent directory must exist.
	WriteFile(path string, data []byte) error

	// MkdirAll creates the directory at path along with any missing parents.
	MkdirAll(path string) error
}
