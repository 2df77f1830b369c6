package loader

import (
	"io/fs"
	"path"
	"sync"
	"time"
)

// MemFS is an in-memory FileSystem.
type MemFS struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// AddFile creates or replaces the file at p.
func (m *MemFS) AddFile(p, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = []byte(content)
}

func (m *MemFS) ReadFile(p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MemFS) Stat(p string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return memFileInfo{name: path.Base(p), size: int64(len(data))}, nil
}

type memFileInfo struct {
	name string
	size int64
}

func (f memFileInfo) Name() string       { return f.name }
func (f memFileInfo) Size() int64        { return f.size }
func (f memFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f memFileInfo) ModTime() time.Time { return time.Time{} }
func (f memFileInfo) IsDir() bool        { return false }
func (f memFileInfo) Sys() any           { return nil }
