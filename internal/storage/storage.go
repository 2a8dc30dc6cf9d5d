// Package storage abstracts the artifact directory so handlers and tests
// can share one interface over the real filesystem or an in-memory fake.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Store is the artifact directory seen by the rest of the service.
type Store interface {
	// Exists reports whether name is already taken.
	Exists(name string) bool
	// Write persists data under name, replacing any previous content.
	Write(name string, data []byte) error
	// Open returns the content stored under name.
	Open(name string) (io.ReadCloser, error)
	// List returns every stored name in lexical order.
	List() ([]string, error)
}

// ReservePath picks the first free artifact name for base and ext: base.ext,
// then base-1.ext, base-2.ext and so on. It only computes a name; nothing
// reserves it, so two concurrent callers can both observe the same free slot
// and the second write wins. The original system has the same check-then-act
// race and fixing it would need an exclusive-create primitive.
func ReservePath(store Store, base, ext string) string {
	name := base + ext
	if !store.Exists(name) {
		return name
	}
	for i := 1; ; i++ {
		alt := fmt.Sprintf("%s-%d%s", base, i, ext)
		if !store.Exists(alt) {
			return alt
		}
	}
}

// Dir is a Store backed by a single directory on disk.
type Dir struct {
	root string
}

// NewDir creates the directory if needed and returns a Store over it.
func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &Dir{root: root}, nil
}

// Root returns the backing directory path.
func (d *Dir) Root() string { return d.root }

func (d *Dir) path(name string) string {
	return filepath.Join(d.root, filepath.Base(name))
}

func (d *Dir) Exists(name string) bool {
	_, err := os.Stat(d.path(name))
	return err == nil
}

func (d *Dir) Write(name string, data []byte) error {
	return os.WriteFile(d.path(name), data, 0o644)
}

func (d *Dir) Open(name string) (io.ReadCloser, error) {
	return os.Open(d.path(name))
}

func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Mem is an in-memory Store for tests. It serializes access with a mutex,
// which also makes it immune to the naming race documented on ReservePath.
type Mem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{files: make(map[string][]byte)}
}

func (m *Mem) Exists(name string) bool {
	m.mu.RLock()
	_, ok := m.files[name]
	m.mu.RUnlock()
	return ok
}

func (m *Mem) Write(name string, data []byte) error {
	m.mu.Lock()
	m.files[name] = append([]byte(nil), data...)
	m.mu.Unlock()
	return nil
}

func (m *Mem) Open(name string) (io.ReadCloser, error) {
	m.mu.RLock()
	data, ok := m.files[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("artifact %s: %w", name, os.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *Mem) List() ([]string, error) {
	m.mu.RLock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}
