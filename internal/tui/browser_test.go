package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/picview/internal/files/filesystem"
	"github.com/vvka-141/picview/internal/files/lister"
	"github.com/vvka-141/picview/internal/files/loader"
	"github.com/vvka-141/picview/internal/logging"
	"github.com/vvka-141/picview/pkg/picview"
)

const pngBytes = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00"

func newTestBrowser(t *testing.T, start string) BrowserModel {
	t.Helper()
	fs := filesystem.NewMemoryFileSystem("/")
	fs.AddDir("/photos/trips/alps")
	fs.AddDir("/photos/trips/coast")
	fs.AddDir("/photos/family")
	fs.AddFile("/photos/img10.png", pngBytes)
	fs.AddFile("/photos/img2.png", pngBytes)
	fs.AddFile("/photos/fake.jpg", "plain text")
	fs.AddFile("/photos/readme.md", "ignored")

	logger := logging.NewNullLogger()
	return NewBrowserModel(
		lister.NewListerWithFS(fs, logger),
		loader.NewLoaderWithFS(fs, logger),
		fs,
		start,
	)
}

func drainCmds(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmds(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findLoaded(msgs []tea.Msg) (imageLoadedMsg, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(imageLoadedMsg); ok {
			return m, true
		}
	}
	return imageLoadedMsg{}, false
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m BrowserModel, msg tea.Msg) (BrowserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	browser, ok := next.(BrowserModel)
	require.True(t, ok, "expected BrowserModel, got %T", next)
	return browser, cmd
}

func press(t *testing.T, m BrowserModel, keys ...string) BrowserModel {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func itemPaths(items []picview.PathItem) []string {
	paths := make([]string, len(items))
	for i, item := range items {
		paths[i] = item.Path
	}
	return paths
}

func TestBrowser_InitialListing(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	assert.Equal(t, "/photos", m.Dir())
	assert.Equal(t, []string{
		"/photos/family",
		"/photos/trips",
		"/photos/fake.jpg",
		"/photos/img2.png",
		"/photos/img10.png",
	}, itemPaths(m.Items()))
	assert.Equal(t, 0, m.cursor, "cursor starts on ..")
}

func TestBrowser_StartOnFileShowsItsDirectory(t *testing.T) {
	m := newTestBrowser(t, "/photos/img2.png")
	assert.Equal(t, "/photos", m.Dir())
}

func TestBrowser_CursorBounds(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	m = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "down", "down", "j")
	assert.Equal(t, 3, m.cursor)

	m = press(t, m, "end", "down")
	assert.Equal(t, len(m.Items()), m.cursor, "cursor stops at the last item")
}

func TestBrowser_EnterDirectory(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	// .. , family, trips
	m = press(t, m, "down", "down", "enter")
	assert.Equal(t, "/photos/trips", m.Dir())
	assert.Equal(t, []string{"/photos/trips/alps", "/photos/trips/coast"}, itemPaths(m.Items()))
	assert.Equal(t, 0, m.cursor)
}

func TestBrowser_ParentSelectsPreviousDirectory(t *testing.T) {
	m := newTestBrowser(t, "/photos/trips")

	m = press(t, m, "backspace")
	assert.Equal(t, "/photos", m.Dir())
	require.Greater(t, m.cursor, 0)
	assert.Equal(t, "/photos/trips", m.Items()[m.cursor-1].Path)

	m = press(t, m, "left")
	assert.Equal(t, "/", m.Dir())

	m = press(t, m, "left")
	assert.Equal(t, "/", m.Dir(), "root is its own parent")
}

func TestBrowser_EnterOnParentRow(t *testing.T) {
	m := newTestBrowser(t, "/photos/trips")

	m = press(t, m, "enter")
	assert.Equal(t, "/photos", m.Dir())
}

func TestBrowser_LoadImage(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	// .. family trips fake.jpg img2.png
	m = press(t, m, "down", "down", "down", "down")
	m, cmd := update(t, m, keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.status.Busy(), "spinner runs while loading")
	assert.Contains(t, m.View(), "Loading img2.png")

	loaded, ok := findLoaded(drainCmds(cmd))
	require.True(t, ok, "expected imageLoadedMsg from cmd execution")
	require.NoError(t, loaded.err)

	m, _ = update(t, m, loaded)
	assert.False(t, m.status.Busy())
	assert.Equal(t, "/photos/img2.png", m.Opened())
	assert.Contains(t, m.status.Result(), "image/png")
	assert.Contains(t, m.status.Result(), "img2.png")
}

func TestBrowser_LoadFailureShown(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	m = press(t, m, "down", "down", "down")
	m, cmd := update(t, m, keyMsg("enter"))

	loaded, ok := findLoaded(drainCmds(cmd))
	require.True(t, ok)

	m, _ = update(t, m, loaded)
	require.Error(t, m.status.Err())
	assert.True(t, errors.Is(m.status.Err(), picview.ErrUnsupportedFormat))
	assert.Empty(t, m.Opened())
}

func TestBrowser_StaleLoadIgnored(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	m = press(t, m, "down", "down", "down", "down")
	m, cmd := update(t, m, keyMsg("enter"))

	// Navigate away before the load completes
	m = press(t, m, "left")

	loaded, ok := findLoaded(drainCmds(cmd))
	require.True(t, ok)
	m, _ = update(t, m, loaded)

	assert.Empty(t, m.Opened())
	assert.Empty(t, m.status.Result())
}

func TestBrowser_GotoWithCompletion(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	m, cmd := update(t, m, keyMsg("g"))
	assert.NotNil(t, cmd, "focus returns a blink command")
	assert.True(t, m.going)
	assert.Equal(t, "/photos/", m.goTo.Value())

	m = press(t, m, "t", "r", "tab")
	assert.Equal(t, "/photos/trips/", m.goTo.Value())

	m = press(t, m, "c", "tab", "enter")
	assert.False(t, m.going)
	assert.Equal(t, "/photos/trips/coast", m.Dir())
}

func TestBrowser_GotoCancel(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	m = press(t, m, "g", "x", "esc")
	assert.False(t, m.going)
	assert.Equal(t, "/photos", m.Dir())
}

func TestBrowser_GotoTypingQDoesNotQuit(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	m = press(t, m, "g")
	m, cmd := update(t, m, keyMsg("q"))
	assert.False(t, isQuitCmd(cmd))
	assert.True(t, strings.HasSuffix(m.goTo.Value(), "q"))
}

func TestBrowser_Quit(t *testing.T) {
	m := newTestBrowser(t, "/photos")

	_, cmd := update(t, m, keyMsg("q"))
	assert.True(t, isQuitCmd(cmd))

	_, cmd = update(t, m, keyMsg("ctrl+c"))
	assert.True(t, isQuitCmd(cmd))
}

func TestBrowser_ViewScrollsWithCursor(t *testing.T) {
	m := newTestBrowser(t, "/photos")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})

	m = press(t, m, "end")
	view := m.View()
	assert.Contains(t, view, "img10.png")
	assert.NotContains(t, view, "..\n", "parent row scrolled out of view")
}

func TestBrowser_EmptyDirectory(t *testing.T) {
	m := newTestBrowser(t, "/photos/trips/alps")

	assert.Empty(t, m.Items())
	assert.Contains(t, m.View(), "no folders or images here")

	m = press(t, m, "down", "enter")
	assert.Equal(t, "/photos/trips", m.Dir())
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 B", humanSize(512))
	assert.Equal(t, "1.5 KiB", humanSize(1536))
	assert.Equal(t, "2.0 MiB", humanSize(2*1024*1024))
}
