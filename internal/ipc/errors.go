package ipc

import (
	"errors"

	"github.com/vvka-141/picview/pkg/picview"
)

var (
	// ErrUnknownCommand indicates the command name is not registered.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidArguments indicates the command arguments could not be decoded.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Error kinds reported to clients.
const (
	KindUnknownFormat     = "unknown_format"
	KindUnsupportedFormat = "unsupported_format"
	KindReadError         = "read_error"
	KindUnknownCommand    = "unknown_command"
	KindInvalidArguments  = "invalid_arguments"
	KindHistory           = "history"
	KindInternal          = "internal"
)

// KindOf classifies err for clients. Returns "" for nil.
func KindOf(err error) string {
	// ErrUnknownFormat wraps ErrUnsupportedFormat, so it is checked first.
	switch {
	case err == nil:
		return ""
	case errors.Is(err, picview.ErrUnknownFormat):
		return KindUnknownFormat
	case errors.Is(err, picview.ErrUnsupportedFormat):
		return KindUnsupportedFormat
	case errors.Is(err, picview.ErrImageRead):
		return KindReadError
	case errors.Is(err, ErrUnknownCommand):
		return KindUnknownCommand
	case errors.Is(err, ErrInvalidArguments):
		return KindInvalidArguments
	case errors.Is(err, picview.ErrHistoryUnavailable), errors.Is(err, picview.ErrHistoryWrite):
		return KindHistory
	default:
		return KindInternal
	}
}
