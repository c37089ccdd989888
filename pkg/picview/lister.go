package picview

import "context"

// DirectoryLister surfaces the browsable entries of a directory.
//
// Listing never fails: an unreadable directory yields an empty result and
// unreadable entries are omitted.
type DirectoryLister interface {
	// List returns the subdirectories and supported image files directly
	// inside basePath, directories first, each class in natural order.
	// When basePath is not a directory, its parent directory is listed.
	List(ctx context.Context, basePath string) []PathItem

	// Resolve returns the directory that List would scan for basePath.
	Resolve(basePath string) string

	// Parent returns the parent directory of path, or path itself when it
	// has no parent.
	Parent(path string) string
}
