package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Backend is the storage the Store reads from and writes to.
type Backend interface {
	// Read returns the file contents, or ErrNotFound if it does not exist.
	Read(path string) ([]byte, error)

	// Write replaces the file contents. Readers must observe either the old
	// or the new contents, never a mix.
	Write(path string, data []byte) error

	// EnsureDir creates dir and its parents if needed.
	EnsureDir(dir string) error
}

// FSBackend stores state on the local filesystem.
type FSBackend struct{}

// Read implements Backend.
func (FSBackend) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Write implements Backend by writing a temp file in the same directory,
// syncing it and renaming it over path.
func (FSBackend) Write(path string, data []byte) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// EnsureDir implements Backend.
func (FSBackend) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// MemoryBackend keeps files in memory. It is used by tests and by the
// scenario harness.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type MemoryBackend struct {
	mu       sync.Mutex
	files    map[string][]byte
	dirs     map[string]bool
	writeErr error
	writes   int
}

// NewMemoryBackend creates an empty backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// Read implements Backend.
func (m *MemoryBackend) Read(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Write implements Backend. It fails with the error set by FailWrites.
func (m *MemoryBackend) Write(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = append([]byte(nil), data...)
	m.writes++
	return nil
}

// EnsureDir implements Backend.
func (m *MemoryBackend) EnsureDir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[dir] = true
	return nil
}

// FailWrites makes every following Write return err. A nil err restores
// normal behaviour.
func (m *MemoryBackend) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Put stores data at path directly, bypassing FailWrites.
func (m *MemoryBackend) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
}

// Writes returns the number of successful writes.
func (m *MemoryBackend) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// HasDir reports whether EnsureDir was called for dir.
func (m *MemoryBackend) HasDir(dir string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirs[dir]
}
