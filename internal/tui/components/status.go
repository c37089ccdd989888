package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Status is a one-line indicator: a spinner while work is pending, then the
// outcome of the last operation.
type Status struct {
	spinner spinner.Model
	message string
	busy    bool
	result  string
	err     error
	styles  statusStyles
}

type statusStyles struct {
	Message lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func defaultStatusStyles() statusStyles {
	return statusStyles{
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// NewStatus creates an idle status line.
func NewStatus() Status {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	return Status{
		spinner: s,
		styles:  defaultStatusStyles(),
	}
}

// Start shows the spinner with message. The returned command drives the animation.
func (s Status) Start(message string) (Status, tea.Cmd) {
	s.busy = true
	s.message = message
	s.result = ""
	s.err = nil
	return s, s.spinner.Tick
}

// Succeed stops the spinner and shows result.
func (s Status) Succeed(result string) Status {
	s.busy = false
	s.result = result
	s.err = nil
	return s
}

// Fail stops the spinner and shows err.
func (s Status) Fail(err error) Status {
	s.busy = false
	s.result = ""
	s.err = err
	return s
}

// Clear returns the status to idle.
func (s Status) Clear() Status {
	return NewStatus()
}

// Update advances the spinner. Ticks arriving while idle are dropped,
// which ends the animation loop.
func (s Status) Update(msg tea.Msg) (Status, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !s.busy {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(tick)
	return s, cmd
}

// View implements tea.Model.
func (s Status) View() string {
	switch {
	case s.busy:
		return s.spinner.View() + " " + s.styles.Message.Render(s.message)
	case s.err != nil:
		return s.styles.Error.Render("✗ " + s.err.Error())
	case s.result != "":
		return s.styles.Success.Render("✓ " + s.result)
	}
	return ""
}

// Busy reports whether an operation is pending.
func (s Status) Busy() bool {
	return s.busy
}

// Result returns the last success text.
func (s Status) Result() string {
	return s.result
}

// Err returns the last failure.
func (s Status) Err() error {
	return s.err
}
