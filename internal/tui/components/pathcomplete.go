package components

import (
	"path/filepath"
	"strings"

	"github.com/vvka-141/picview/internal/files/filesystem"
	"github.com/vvka-141/picview/internal/natsort"
)

// PathCompleter provides tab-completion and cycling for directory paths.
// It tracks state across Tab presses to cycle through matches.
//
// Usage:
//
//	completer := NewPathCompleter(filesystem.NewOSFileSystem())
//
//	// On Tab press:
//	completed := completer.Next(input.Value())
//	input.SetValue(completed)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	fsProvider filesystem.FileSystemProvider
	matches    []string
	cycleIndex int
	lastInput  string
}

// NewPathCompleter creates a completer that matches directories only.
func NewPathCompleter(fsProvider filesystem.FileSystemProvider) *PathCompleter {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &PathCompleter{fsProvider: fsProvider}
}

// Next returns the next completion for the given input.
// On first call (or after input changes), it computes matches.
// On subsequent calls with the same base input, it cycles through matches.
func (c *PathCompleter) Next(input string) string {
	parent, prefix := splitPath(input)

	if parent != c.lastInput || c.matches == nil {
		c.matches = c.findMatches(parent, prefix)
		c.cycleIndex = 0
		c.lastInput = parent

		if len(c.matches) == 0 {
			return input
		}

		// First Tab completes the shared prefix when that extends the input
		if len(c.matches) > 1 {
			common := longestCommonPrefix(c.matches)
			candidate := filepath.Join(parent, common)
			if len(candidate) > len(input) {
				// The next Tab starts cycling at the first match
				c.cycleIndex = -1
				return candidate
			}
		}

		return c.formatMatch(parent, c.matches[c.cycleIndex])
	}

	if len(c.matches) == 0 {
		return input
	}

	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return c.formatMatch(parent, c.matches[c.cycleIndex])
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastInput = ""
}

func (c *PathCompleter) findMatches(parent, prefix string) []string {
	entries, err := c.fsProvider.ReadDir(parent)
	if len(entries) == 0 && err != nil {
		return nil
	}

	var matches []string
	lowPrefix := strings.ToLower(prefix)

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			continue
		}
		// Stat follows symlinks, so linked directories complete too
		info, err := c.fsProvider.Stat(filepath.Join(parent, name))
		if err != nil || !info.IsDir() {
			continue
		}
		matches = append(matches, name)
	}

	natsort.Strings(matches)
	return matches
}

func (c *PathCompleter) formatMatch(parent, name string) string {
	return filepath.Join(parent, name) + string(filepath.Separator)
}

// splitPath splits an input into parent directory and name prefix.
//
//	"./src/com" → ("src", "com")
//	"./src/"    → ("./src", "")
//	"my"        → (".", "my")
//	""          → (".", "")
//	"."         → (".", "")
//	"/"         → ("/", "")
func splitPath(input string) (parent, prefix string) {
	if input == "" || input == "." {
		return ".", ""
	}

	if strings.HasSuffix(input, string(filepath.Separator)) || strings.HasSuffix(input, "/") {
		trimmed := strings.TrimRight(input, `/\`)
		if trimmed == "" {
			return input[:1], ""
		}
		return trimmed, ""
	}

	parent = filepath.Dir(input)
	prefix = filepath.Base(input)
	return parent, prefix
}

// longestCommonPrefix finds the longest common prefix among strings (case-insensitive).
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	lowered := make([]string, len(strs))
	for i, s := range strs {
		lowered[i] = strings.ToLower(s)
	}

	first := lowered[0]
	rest := lowered[1:]
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, s := range rest {
			if i >= len(s) || s[i] != ch {
				return strs[0][:i]
			}
		}
	}
	return strs[0]
}
