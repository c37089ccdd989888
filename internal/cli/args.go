package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/picview/pkg/picview"
)

// RequirePath validates that exactly one <path> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequirePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <path>

Usage: %s

Example:
  %s ~/Pictures/holiday.png`, picview.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", picview.ErrUsage, len(args))
	}
	return nil
}

// OptionalPath validates that at most one [path] argument is provided.
func OptionalPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts at most 1 arg(s), received %d", picview.ErrUsage, len(args))
	}
	return nil
}

// pathArg returns the first argument, or fallback when there is none.
func pathArg(args []string, fallback string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return fallback
}
