package picview

import "context"

// HistoryStore persists the single most recently opened path.
type HistoryStore interface {
	// Read returns the stored path, or "" when nothing has been stored yet.
	// A missing or unreadable history file is regenerated empty.
	Read(ctx context.Context) (string, error)

	// Write replaces the stored path.
	Write(ctx context.Context, path string) error
}
