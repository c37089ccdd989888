package picview

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	payload, err := loader.Load(ctx, path)
//	if errors.Is(err, picview.ErrUnsupportedFormat) {
//	    // Not an image we can show
//	}
var (
	// ErrUsage indicates the command line was invalid.
	ErrUsage = errors.New("invalid usage")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedFormat indicates the file content is not a supported image kind.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrUnknownFormat indicates the file content matched no known signature.
	// It is a refinement of ErrUnsupportedFormat and matches it with errors.Is.
	ErrUnknownFormat = fmt.Errorf("%w: unknown content type", ErrUnsupportedFormat)

	// ErrImageRead indicates the image file could not be read from disk.
	ErrImageRead = errors.New("failed to read image")

	// ErrHistoryUnavailable indicates the history file could neither be read
	// nor regenerated.
	ErrHistoryUnavailable = errors.New("history unavailable")

	// ErrHistoryWrite indicates the history file could not be written.
	ErrHistoryWrite = errors.New("failed to write history")
)

// ImageError describes a failed image load.
type ImageError struct {
	// Path is the file that was being loaded.
	Path string

	// MIMEType is the rejected content type, when one was detected.
	MIMEType string

	// Err is the underlying cause. It wraps one of the image sentinels.
	Err error
}

func (e *ImageError) Error() string {
	if e.MIMEType != "" {
		return fmt.Sprintf("%v: %s (%s)", e.Err, e.MIMEType, e.Path)
	}
	return fmt.Sprintf("%v (%s)", e.Err, e.Path)
}

func (e *ImageError) Unwrap() error { return e.Err }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// ErrUnknownFormat wraps ErrUnsupportedFormat, so it is checked first.
	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnknownFormat):
		return ExitUnknownFormat
	case errors.Is(err, ErrUnsupportedFormat):
		return ExitUnsupportedFormat
	case errors.Is(err, ErrImageRead):
		return ExitImageReadError
	case errors.Is(err, ErrHistoryUnavailable), errors.Is(err, ErrHistoryWrite):
		return ExitHistoryError
	}

	// cobra reports argument and flag misuse as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"arg(s), received",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
