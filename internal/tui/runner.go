package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunBrowser runs the browser full-screen until the user quits and returns
// the final model, from which the caller reads the last directory.
func RunBrowser(m BrowserModel) (BrowserModel, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, fmt.Errorf("terminal browser failed: %w", err)
	}
	browser, ok := final.(BrowserModel)
	if !ok {
		return m, fmt.Errorf("terminal browser returned unexpected model %T", final)
	}
	return browser, nil
}
