package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/picview/internal/files/filesystem"
	"github.com/vvka-141/picview/internal/tui/components"
	"github.com/vvka-141/picview/pkg/picview"
)

// parentRow is the synthetic first row that navigates up.
const parentRow = ".."

// BrowserModel is a bubbletea model listing one directory at a time.
// Row 0 is always "..", rows 1..n are the listed items.
type BrowserModel struct {
	lister picview.DirectoryLister
	loader picview.ImageLoader

	dir    string
	items  []picview.PathItem
	cursor int
	offset int

	status  components.Status
	goTo    components.GotoField
	going   bool
	loadSeq int
	opened  string

	width  int
	height int
	keys   KeyMap
}

// imageLoadedMsg reports a finished background load. seq ties it to the
// request so results of superseded loads are dropped.
type imageLoadedMsg struct {
	seq     int
	path    string
	payload picview.ImagePayload
	err     error
}

// NewBrowserModel creates a browser positioned at start, or at its parent
// directory when start is not a directory. fsProvider backs path completion.
func NewBrowserModel(
	lister picview.DirectoryLister,
	loader picview.ImageLoader,
	fsProvider filesystem.FileSystemProvider,
	start string,
) BrowserModel {
	if lister == nil {
		panic("lister cannot be nil")
	}
	if loader == nil {
		panic("loader cannot be nil")
	}

	m := BrowserModel{
		lister: lister,
		loader: loader,
		status: components.NewStatus(),
		goTo:   components.NewGotoField("Go to:", fsProvider),
		width:  80,
		height: 24,
		keys:   DefaultKeyMap(),
	}
	m.navigate(start)
	return m
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Dir returns the directory currently shown.
func (m BrowserModel) Dir() string {
	return m.dir
}

// Items returns the listed items, without the ".." row.
func (m BrowserModel) Items() []picview.PathItem {
	return m.items
}

// Opened returns the last image that loaded successfully.
func (m BrowserModel) Opened() string {
	return m.opened
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case imageLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.status = m.status.Fail(msg.err)
			return m, nil
		}
		m.opened = msg.path
		m.status = m.status.Succeed(fmt.Sprintf("%s  %s  %s base64",
			filepath.Base(msg.path), msg.payload.MIMEType, humanSize(len(msg.payload.Data))))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.going {
			return m.updateGoto(msg)
		}
		return m.updateList(msg)
	}

	var cmds []tea.Cmd
	if m.going {
		var cmd tea.Cmd
		m.goTo, cmd = m.goTo.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m BrowserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items) {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.items)
	case key.Matches(msg, m.keys.Parent):
		m.up()
	case key.Matches(msg, m.keys.Open):
		return m.open()
	case key.Matches(msg, m.keys.Goto):
		m.going = true
		return m, m.goTo.Open(withTrailingSeparator(m.dir))
	}
	m.clampOffset()
	return m, nil
}

func (m BrowserModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.going = false
		m.goTo.Close()
		return m, nil
	case msg.Type == tea.KeyEnter:
		target := strings.TrimSpace(m.goTo.Value())
		m.going = false
		m.goTo.Close()
		if target != "" {
			m.navigate(filepath.Clean(target))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.goTo, cmd = m.goTo.Update(msg)
	return m, cmd
}

// open acts on the selected row: ".." goes up, a directory is entered and
// an image is loaded in the background.
func (m BrowserModel) open() (tea.Model, tea.Cmd) {
	if m.cursor == 0 {
		m.up()
		return m, nil
	}

	item := m.items[m.cursor-1]
	if item.IsDirectory {
		m.navigate(item.Path)
		return m, nil
	}

	m.loadSeq++
	var tick tea.Cmd
	m.status, tick = m.status.Start("Loading " + filepath.Base(item.Path))
	return m, tea.Batch(tick, loadImage(m.loader, m.loadSeq, item.Path))
}

func loadImage(loader picview.ImageLoader, seq int, path string) tea.Cmd {
	return func() tea.Msg {
		payload, err := loader.Load(context.Background(), path)
		return imageLoadedMsg{seq: seq, path: path, payload: payload, err: err}
	}
}

// up moves to the parent directory and selects the directory just left.
func (m *BrowserModel) up() {
	from := m.dir
	m.navigate(m.lister.Parent(m.dir))
	for i, item := range m.items {
		if item.Path == from {
			m.cursor = i + 1
			break
		}
	}
	m.clampOffset()
}

func (m *BrowserModel) navigate(path string) {
	m.dir = m.lister.Resolve(path)
	m.items = m.lister.List(context.Background(), m.dir)
	m.cursor = 0
	m.offset = 0
	if m.status.Busy() {
		// A pending load for the old directory is no longer wanted
		m.loadSeq++
	}
	m.status = m.status.Clear()
}

// visibleRows is the number of list rows that fit between header and footer.
func (m BrowserModel) visibleRows() int {
	rows := m.height - 7
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *BrowserModel) clampOffset() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("picview"))
	b.WriteString("\n")
	b.WriteString(PathStyle.Render(m.dir))
	b.WriteString("\n")

	total := len(m.items) + 1
	end := m.offset + m.visibleRows()
	if end > total {
		end = total
	}
	for row := m.offset; row < end; row++ {
		b.WriteString(m.renderRow(row))
		b.WriteString("\n")
	}
	if len(m.items) == 0 {
		b.WriteString(EmptyStyle.Render("  no folders or images here"))
		b.WriteString("\n")
	}

	if status := m.status.View(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	if m.going {
		b.WriteString("\n")
		b.WriteString(m.goTo.View())
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(m.keys.GotoHelpText()))
	} else {
		b.WriteString(HelpStyle.Render(m.keys.HelpText()))
	}

	return b.String()
}

func (m BrowserModel) renderRow(row int) string {
	prefix := "  "
	if row == m.cursor {
		prefix = SymbolCursor + " "
	}

	if row == 0 {
		line := prefix + SymbolDirectory + " " + parentRow
		if row == m.cursor {
			return SelectedStyle.Render(line)
		}
		return DirectoryStyle.Render(line)
	}

	item := m.items[row-1]
	name := filepath.Base(item.Path)
	symbol, style := SymbolImage, FileStyle
	if item.IsDirectory {
		name += string(filepath.Separator)
		symbol, style = SymbolDirectory, DirectoryStyle
	}
	if row == m.cursor {
		style = SelectedStyle
	}
	return style.Render(prefix + symbol + " " + name)
}

func withTrailingSeparator(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + string(filepath.Separator)
}

func humanSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
