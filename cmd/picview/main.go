package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/picview/internal/cli"
	"github.com/vvka-141/picview/pkg/picview"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(picview.ExitPanic)
		}
	}()

	if os.Getenv("PICVIEW_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(picview.ExitCodeForError(err))
	}
}
