package lister

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/picview/internal/logging"
)

func TestLister_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img10.png"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img2.PNG"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0644))

	l := NewLister(logging.NewNullLogger())
	items := l.List(context.Background(), dir)

	assert.Equal(t, []string{
		filepath.Join(dir, "sub"),
		filepath.Join(dir, "img2.PNG"),
		filepath.Join(dir, "img10.png"),
	}, paths(items))
	assert.True(t, items[0].IsDirectory)
}

func TestLister_OSFileSystem_SymlinkedDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "elsewhere")
	require.NoError(t, os.Mkdir(target, 0755))
	if err := os.Symlink(target, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	items := NewLister(logging.NewNullLogger()).List(context.Background(), dir)

	require.Len(t, items, 1)
	assert.True(t, items[0].IsDirectory)
}

func TestLister_OSFileSystem_DanglingSymlinkSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.png"), []byte("x"), 0644))
	if err := os.Symlink(filepath.Join(dir, "gone.png"), filepath.Join(dir, "dangling.png")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	items := NewLister(logging.NewNullLogger()).List(context.Background(), dir)

	assert.Equal(t, []string{filepath.Join(dir, "ok.png")}, paths(items))
}

func TestLister_OSFileSystem_Nonexistent(t *testing.T) {
	items := NewLister(logging.NewNullLogger()).List(context.Background(), filepath.Join(t.TempDir(), "missing", "dir"))
	assert.Empty(t, items)
}
