package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/pics")

	mfs.AddFile("b.png", "png")
	mfs.AddFile("a.jpg", "jpg")
	mfs.AddFile("trips/2024/beach.webp", "webp")
	mfs.AddDir("empty")

	entries, err := mfs.ReadDir("/pics")
	require.NoError(t, err)

	var names []string
	dirs := map[string]bool{}
	for _, e := range entries {
		names = append(names, e.Name())
		dirs[e.Name()] = e.IsDir()
	}
	assert.Equal(t, []string{"a.jpg", "b.png", "empty", "trips"}, names, "only immediate children, sorted by name")
	assert.True(t, dirs["trips"])
	assert.True(t, dirs["empty"])
	assert.False(t, dirs["a.jpg"])
}

func TestMemoryFileSystem_ReadDir_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/pics")
	mfs.AddFile("a.png", "png")

	_, err := mfs.ReadDir("/pics/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.ReadDir("/pics/a.png")
	assert.Error(t, err)

	mfs.FailReadDir("/pics", errors.New("io error"))
	entries, err := mfs.ReadDir("/pics")
	assert.Error(t, err)
	assert.Len(t, entries, 1, "partial entries are returned with the error")
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/pics")
	mfs.AddFile("a.png", "0123456789")

	content, err := mfs.ReadFile("/pics/a.png")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(content))

	content[0] = 'x'
	again, err := mfs.ReadFile("a.png")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(again), "callers get a copy")

	_, err = mfs.ReadFile("/pics/missing.png")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.ReadFile("/pics")
	assert.Error(t, err, "directories cannot be read")

	mfs.FailRead("a.png", errors.New("permission denied"))
	_, err = mfs.ReadFile("a.png")
	assert.Error(t, err)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/pics")
	mfs.AddFile("a.png", "png")

	info, err := mfs.Stat("/pics/a.png")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "a.png", info.Name())
	assert.Equal(t, int64(3), info.Size())

	info, err = mfs.Stat("/pics")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = mfs.Stat("/")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	mfs.FailStat("/pics/a.png", errors.New("stale handle"))
	_, err = mfs.Stat("/pics/a.png")
	assert.Error(t, err)
}

func TestMemoryFileSystem_WriteFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/")

	err := mfs.WriteFile("/data/picview/history.txt", []byte("/pics"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "parent directory must exist")

	require.NoError(t, mfs.MkdirAll("/data/picview"))
	require.NoError(t, mfs.WriteFile("/data/picview/history.txt", []byte("/pics")))
	require.NoError(t, mfs.WriteFile("/data/picview/history.txt", []byte("/b")))

	content, err := mfs.ReadFile("/data/picview/history.txt")
	require.NoError(t, err)
	assert.Equal(t, "/b", string(content))

	assert.Error(t, mfs.WriteFile("/data/picview", []byte("x")), "cannot overwrite a directory")
}

func TestMemoryFileSystem_MkdirAll_ThroughFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFile("/data/file", "x")

	assert.Error(t, mfs.MkdirAll("/data/file/sub"))
}
