package loader

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/h2non/filetype"

	"github.com/vvka-141/picview/internal/files/filesystem"
	"github.com/vvka-141/picview/pkg/picview"
)

// Loader implements picview.ImageLoader over a filesystem provider.
// Loader holds no mutable state and is safe for concurrent use.
type Loader struct {
	fsProvider filesystem.FileSystemProvider
	logger     picview.Logger
}

// NewLoader creates an image loader over the OS filesystem.
// Panics if logger is nil.
func NewLoader(logger picview.Logger) *Loader {
	return NewLoaderWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewLoaderWithFS creates an image loader with a custom filesystem provider.
// Panics if fsProvider or logger is nil.
func NewLoaderWithFS(fsProvider filesystem.FileSystemProvider, logger picview.Logger) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Loader{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// Load classifies the file at path by content and returns its bytes as a
// base64 payload tagged with the detected MIME type. The file is read once,
// so the encoded bytes are exactly the bytes that were classified.
func (l *Loader) Load(ctx context.Context, path string) (picview.ImagePayload, error) {
	if err := ctx.Err(); err != nil {
		return picview.ImagePayload{}, err
	}

	content, err := l.fsProvider.ReadFile(path)
	if err != nil {
		return picview.ImagePayload{}, readError(path, err)
	}

	mimeType, err := classify(path, content[:min(len(content), picview.SniffHeaderSize)])
	if err != nil {
		return picview.ImagePayload{}, err
	}

	l.logger.Verbose("Loaded %s (%s, %d bytes)", path, mimeType, len(content))

	return picview.ImagePayload{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(content),
	}, nil
}

// classify returns the MIME type of header if it is a supported image kind.
func classify(path string, header []byte) (string, error) {
	mimeType := DetectMIMEType(header)
	if mimeType == "" {
		return "", &picview.ImageError{Path: path, Err: picview.ErrUnknownFormat}
	}
	if !picview.IsSupportedMIMEType(mimeType) {
		return "", &picview.ImageError{Path: path, MIMEType: mimeType, Err: picview.ErrUnsupportedFormat}
	}
	return mimeType, nil
}

// DetectMIMEType classifies leading file bytes by their format signature.
// It returns "" when no known signature matches, including for empty input.
func DetectMIMEType(header []byte) string {
	kind, err := filetype.Match(header)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

func readError(path string, cause error) error {
	return &picview.ImageError{Path: path, Err: fmt.Errorf("%w: %w", picview.ErrImageRead, cause)}
}

// Verify Loader implements the interface at compile time
var _ picview.ImageLoader = (*Loader)(nil)
