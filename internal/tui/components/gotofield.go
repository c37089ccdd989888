package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/picview/internal/files/filesystem"
)

// GotoField is a path input with Tab completion over directories.
type GotoField struct {
	label     string
	input     textinput.Model
	completer *PathCompleter
	complete  key.Binding
	styles    gotoFieldStyles
}

type gotoFieldStyles struct {
	Label lipgloss.Style
	Input lipgloss.Style
}

func defaultGotoFieldStyles() gotoFieldStyles {
	return gotoFieldStyles{
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginRight(1),
		Input: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

// NewGotoField creates a field completing against fsProvider.
func NewGotoField(label string, fsProvider filesystem.FileSystemProvider) GotoField {
	ti := textinput.New()
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Prompt = ""

	return GotoField{
		label:     label,
		input:     ti,
		completer: NewPathCompleter(fsProvider),
		complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		styles: defaultGotoFieldStyles(),
	}
}

// Open focuses the field with value prefilled and the cursor at the end.
func (g *GotoField) Open(value string) tea.Cmd {
	g.completer.Reset()
	g.input.SetValue(value)
	g.input.CursorEnd()
	return g.input.Focus()
}

// Close blurs the field.
func (g *GotoField) Close() {
	g.completer.Reset()
	g.input.Blur()
}

// Focused reports whether the field accepts input.
func (g GotoField) Focused() bool {
	return g.input.Focused()
}

// Update handles Tab as completion and passes everything else to the input.
func (g GotoField) Update(msg tea.Msg) (GotoField, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, g.complete) {
			g.input.SetValue(g.completer.Next(g.input.Value()))
			g.input.CursorEnd()
			return g, nil
		}
		g.completer.Reset()
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

// View implements tea.Model.
func (g GotoField) View() string {
	return g.styles.Label.Render(g.label) + g.styles.Input.Render(g.input.View())
}

// Value returns the current text.
func (g GotoField) Value() string {
	return g.input.Value()
}
