// Package fsxmem is an in-memory fsx.FileSystem for local development and tests.
package fsxmem

import (
	"context"
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/Abraxas-365/careers/pkg/errx"
)

type MemFileSystem struct {
	mu      sync.RWMutex
	files   map[string][]byte
	baseURL string
}

func New(baseURL string) *MemFileSystem {
	return &MemFileSystem{
		files:   make(map[string][]byte),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (m *MemFileSystem) WriteFile(_ context.Context, p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = append([]byte(nil), data...)
	return nil
}

func (m *MemFileSystem) WriteFileStream(ctx context.Context, p string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errx.Wrap(err, "failed to read upload", errx.TypeInternal)
	}
	return m.WriteFile(ctx, p, data)
}

func (m *MemFileSystem) ReadFile(_ context.Context, p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[p]
	if !ok {
		return nil, errx.New("file not found", errx.TypeNotFound).WithDetail("path", p)
	}
	return append([]byte(nil), data...), nil
}

func (m *MemFileSystem) DeleteFile(_ context.Context, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, p)
	return nil
}

func (m *MemFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

func (m *MemFileSystem) URL(p string) string {
	return m.baseURL + "/" + strings.TrimLeft(p, "/")
}

// Paths lists stored paths in order
func (m *MemFileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
