// Package storage provides the durable key-value boundary behind the
// expense repository: two string slots, one for the active locale and
// one for the JSON-serialized expense collection.
package storage

import (
	"context"
	"sync"
)

// Slot keys. The names are kept stable for compatibility with data
// written by earlier versions of the tracker.
const (
	KeyLocale   = "financeTrackerLanguage"
	KeyExpenses = "financeTrackerExpenses"
)

// KV is a string-keyed durable store. Get reports presence via ok;
// a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryKV is an in-process KV used by tests and as a throwaway
// backend when no database path is configured.
type MemoryKV struct {
	mu    sync.Mutex
	items map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
