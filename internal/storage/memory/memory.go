// Package memory provides an in-process implementation of storage.Backend.
// Data lives only as long as the process.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/futmanager/internal/storage"
)

// Ensure Backend implements storage.Backend
var _ storage.Backend = (*Backend)(nil)

// Backend keeps blobs in a map.
type Backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

// Get returns a copy of the value under key.
func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Put stores a copy of value under key.
func (b *Backend) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (b *Backend) Close() error {
	return nil
}
