package filestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.FileStore = (*Memory)(nil)

// Memory keeps files in process memory.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// Read implements ports.FileStore.
func (m *Memory) Read(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

// Write implements ports.FileStore.
func (m *Memory) Write(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = append([]byte(nil), data...)
	return nil
}

// Delete implements ports.FileStore.
func (m *Memory) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, name)
	return nil
}

func (m *Memory) Name() string                      { return healthName }
func (m *Memory) HealthCheck(context.Context) error { return nil }
