package tui

import (
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/picview/pkg/picview"
)

// environment is what interactivity detection looks at.
type environment struct {
	getenv     func(string) string
	isTerminal func(fd int) bool
	stdin      *os.File
	stdout     *os.File
}

func processEnvironment() environment {
	return environment{
		getenv:     os.Getenv,
		isTerminal: term.IsTerminal,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	}
}

// HeadlessReason explains why the full-screen browser must not start, or
// returns "" when a person is at a terminal.
func HeadlessReason() string {
	return processEnvironment().headlessReason()
}

func (e environment) headlessReason() string {
	switch {
	case e.getenv(picview.EnvNonInteractive) == "1":
		return picview.EnvNonInteractive + "=1"
	case e.getenv("CI") != "":
		return "CI is set"
	case e.getenv("NO_COLOR") != "":
		return "NO_COLOR is set"
	case !e.isTerminal(int(e.stdin.Fd())):
		return "stdin is not a terminal"
	case !e.isTerminal(int(e.stdout.Fd())):
		return "stdout is not a terminal"
	}
	return ""
}
