package picview_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/picview/pkg/picview"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, picview.ExitSuccess},
		{"general error", errors.New("something went wrong"), picview.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), picview.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), picview.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), picview.ExitUsageError},
		{"wrapped usage", fmt.Errorf("%w: missing path", picview.ErrUsage), picview.ExitUsageError},
		{"config", fmt.Errorf("bad addr: %w", picview.ErrInvalidConfig), picview.ExitConfigError},
		{"unknown format", &picview.ImageError{Path: "a.png", Err: picview.ErrUnknownFormat}, picview.ExitUnknownFormat},
		{"unsupported format", &picview.ImageError{Path: "a.pdf", MIMEType: "application/pdf", Err: picview.ErrUnsupportedFormat}, picview.ExitUnsupportedFormat},
		{"read error", &picview.ImageError{Path: "a.png", Err: fmt.Errorf("%w: %w", picview.ErrImageRead, errors.New("boom"))}, picview.ExitImageReadError},
		{"history read", fmt.Errorf("%w: disk full", picview.ErrHistoryUnavailable), picview.ExitHistoryError},
		{"history write", fmt.Errorf("%w: disk full", picview.ErrHistoryWrite), picview.ExitHistoryError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := picview.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrUnknownFormat_IsUnsupported(t *testing.T) {
	err := &picview.ImageError{Path: "notes.png", Err: picview.ErrUnknownFormat}

	if !errors.Is(err, picview.ErrUnknownFormat) {
		t.Error("expected ErrUnknownFormat to match")
	}
	if !errors.Is(err, picview.ErrUnsupportedFormat) {
		t.Error("expected unknown format to also match ErrUnsupportedFormat")
	}
	if errors.Is(err, picview.ErrImageRead) {
		t.Error("format errors must not match ErrImageRead")
	}
}

func TestImageError_Message(t *testing.T) {
	err := &picview.ImageError{Path: "/pics/doc.png", MIMEType: "application/pdf", Err: picview.ErrUnsupportedFormat}
	want := "unsupported image format: application/pdf (/pics/doc.png)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &picview.ImageError{Path: "/pics/a.png", Err: picview.ErrUnknownFormat}
	want = "unsupported image format: unknown content type (/pics/a.png)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
