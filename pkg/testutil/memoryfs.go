package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements filesystem.FS with in-memory storage.
// It supports error injection per path for failure testing.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	// Error injection: operations touching these paths fail
	errorPaths map[string]error
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem with a root directory
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: map[string]*fileNode{
			"/": {name: "/", mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every operation on path fail with err
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

func (m *MemoryFS) checkError(path string) error {
	if err, ok := m.errorPaths[filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	path = filepath.Clean(path)
	if err := m.checkError(path); err != nil {
		return nil, err
	}
	node, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	return &memFileInfo{node: node}, nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	dir, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	if !dir.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	prefix := filepath.Clean(name)
	var entries []fs.DirEntry
	for path, node := range m.files {
		if filepath.Dir(path) == prefix && path != prefix {
			entries = append(entries, &memDirEntry{node: node})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	data := make([]byte, len(node.content))
	copy(data, node.content)
	return data, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	if err := m.checkError(name); err != nil {
		return err
	}
	if _, ok := m.files[filepath.Dir(name)]; !ok {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(data))
	copy(content, data)
	m.files[name] = &fileNode{
		name:    filepath.Base(name),
		mode:    perm,
		modTime: time.Now(),
		content: content,
	}
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.checkError(path); err != nil {
		return err
	}
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	cur := "/"
	for _, part := range parts {
		if part == "" {
			continue
		}
		cur = filepath.Join(cur, part)
		if node, ok := m.files[cur]; ok {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: fs.ErrExist}
			}
			continue
		}
		m.files[cur] = &fileNode{
			name:    part,
			mode:    perm | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}
	return nil
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	oldpath, newpath = filepath.Clean(oldpath), filepath.Clean(newpath)
	if err := m.checkError(oldpath); err != nil {
		return err
	}
	if err := m.checkError(newpath); err != nil {
		return err
	}
	node, ok := m.files[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	delete(m.files, oldpath)
	node.name = filepath.Base(newpath)
	m.files[newpath] = node
	return nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	if err := m.checkError(name); err != nil {
		return err
	}
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	return nil
}

func (m *MemoryFS) Chtimes(name string, atime, mtime time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	node, err := m.getNode(name)
	if err != nil {
		return err
	}
	node.modTime = mtime
	return nil
}

// memFileInfo adapts a fileNode to fs.FileInfo
type memFileInfo struct {
	node *fileNode
}

func (f *memFileInfo) Name() string       { return f.node.name }
func (f *memFileInfo) Size() int64        { return int64(len(f.node.content)) }
func (f *memFileInfo) Mode() fs.FileMode  { return f.node.mode }
func (f *memFileInfo) ModTime() time.Time { return f.node.modTime }
func (f *memFileInfo) IsDir() bool        { return f.node.isDir }
func (f *memFileInfo) Sys() interface{}   { return nil }

// memDirEntry adapts a fileNode to fs.DirEntry
type memDirEntry struct {
	node *fileNode
}

func (d *memDirEntry) Name() string               { return d.node.name }
func (d *memDirEntry) IsDir() bool                { return d.node.isDir }
func (d *memDirEntry) Type() fs.FileMode          { return d.node.mode.Type() }
func (d *memDirEntry) Info() (fs.FileInfo, error) { return &memFileInfo{node: d.node}, nil }
