package picview

import "context"

// ImageLoader reads an image file and encodes it for display.
//
// Acceptance is decided by the file's content, never by its name. Failures
// are returned as *ImageError and match ErrUnknownFormat,
// ErrUnsupportedFormat or ErrImageRead with errors.Is.
type ImageLoader interface {
	Load(ctx context.Context, path string) (ImagePayload, error)
}
