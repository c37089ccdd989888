package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryNode is a file or directory in the in-memory tree
type memoryNode struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu       sync.RWMutex
	nodes    map[string]*memoryNode // absolute slash path -> node
	root     string
	statErrs map[string]error
	readErrs map[string]error
	dirErrs  map[string]error
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
// Relative paths passed to any method are resolved against root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		nodes:    make(map[string]*memoryNode),
		root:     root,
		statErrs: make(map[string]error),
		readErrs: make(map[string]error),
		dirErrs:  make(map[string]error),
	}
	mfs.mkdirAll(root)
	return mfs
}

// Root returns the directory relative paths are resolved against.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file to the in-memory filesystem, creating parent directories
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	mfs.mkdirAll(path.Dir(absPath))
	mfs.putFile(absPath, []byte(content), modTime)
}

// AddDir adds a directory and any missing parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mkdirAll(mfs.abs(dirPath))
}

// FailStat makes Stat on the given path return err.
func (mfs *MemoryFileSystem) FailStat(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.statErrs[mfs.abs(p)] = err
}

// FailRead makes ReadFile on the given path return err.
func (mfs *MemoryFileSystem) FailRead(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.readErrs[mfs.abs(p)] = err
}

// FailReadDir makes ReadDir on the given path return err. Entries are still
// returned alongside the error, mirroring a scan that broke off midway.
func (mfs *MemoryFileSystem) FailReadDir(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.dirErrs[mfs.abs(p)] = err
}

// abs resolves p to an absolute slash path within the virtual filesystem
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// mkdirAll creates directory nodes for p and its parents. Caller holds mu.
func (mfs *MemoryFileSystem) mkdirAll(p string) {
	for {
		if _, exists := mfs.nodes[p]; exists {
			return
		}
		mfs.nodes[p] = &memoryNode{
			info: &memoryFileInfo{
				name:    path.Base(p),
				mode:    0755 | fs.ModeDir,
				modTime: time.Now(),
				isDir:   true,
			},
		}
		parent := path.Dir(p)
		if parent == p {
			return
		}
		p = parent
	}
}

// putFile stores a file node. Caller holds mu.
func (mfs *MemoryFileSystem) putFile(p string, content []byte, modTime time.Time) {
	mfs.nodes[p] = &memoryNode{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(p),
			size:    int64(len(content)),
			mode:    0644,
			modTime: modTime,
		},
	}
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.abs(dirPath)
	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist}
	}
	if !node.info.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fmt.Errorf("not a directory")}
	}

	var entries []DirEntry
	for p, child := range mfs.nodes {
		if p != absPath && path.Dir(p) == absPath {
			entries = append(entries, fs.FileInfoToDirEntry(child.info))
		}
	}

	// Sort by name for deterministic order, as os.ReadDir does
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	if err, failing := mfs.dirErrs[absPath]; failing {
		return entries, &fs.PathError{Op: "readdir", Path: dirPath, Err: err}
	}
	return entries, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.abs(statPath)
	if err, failing := mfs.statErrs[absPath]; failing {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: err}
	}

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return node.info, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	node, err := mfs.readableFile(filePath)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), node.content...), nil
}

// readableFile looks up a regular file for reading. Caller holds mu.
func (mfs *MemoryFileSystem) readableFile(filePath string) (*memoryNode, error) {
	absPath := mfs.abs(filePath)
	if err, failing := mfs.readErrs[absPath]; failing {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: err}
	}

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	if node.info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fmt.Errorf("is a directory")}
	}
	return node, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	parent, exists := mfs.nodes[path.Dir(absPath)]
	if !exists || !parent.info.IsDir() {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if node, exists := mfs.nodes[absPath]; exists && node.info.IsDir() {
		return &fs.PathError{Op: "open", Path: filePath, Err: fmt.Errorf("is a directory")}
	}

	mfs.putFile(absPath, append([]byte(nil), data...), time.Now())
	return nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(dirPath)
	for p := absPath; ; p = path.Dir(p) {
		if node, exists := mfs.nodes[p]; exists && !node.info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: dirPath, Err: fmt.Errorf("not a directory")}
		}
		if path.Dir(p) == p {
			break
		}
	}

	mfs.mkdirAll(absPath)
	return nil
}

// Verify MemoryFileSystem implements the interface at compile time
var _ FileSystemProvider = (*MemoryFileSystem)(nil)
