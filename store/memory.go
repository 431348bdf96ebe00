package store

import (
	"context"
	"sync"

	"shopcore/errs"
)

// MemoryStore is a mutex-guarded in-memory implementation of KeyValueStore.
// It backs unit tests and ephemeral sessions, and can be primed to fail so
// callers' error paths can be exercised without a real storage fault.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string

	failGet    error
	failSet    error
	failRemove error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// FailSets makes every subsequent Set return the given error until cleared
// with nil.
func (m *MemoryStore) FailSets(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSet = err
}

// FailGets makes every subsequent Get return the given error until cleared.
func (m *MemoryStore) FailGets(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failGet = err
}

// FailRemoves makes every subsequent Remove return the given error until
// cleared.
func (m *MemoryStore) FailRemoves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failRemove = err
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return "", false, errs.Wrap(errs.CodeStoreIO, "get "+key, m.failGet)
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return errs.Wrap(errs.CodeStoreIO, "set "+key, m.failSet)
	}
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRemove != nil {
		return errs.Wrap(errs.CodeStoreIO, "remove "+key, m.failRemove)
	}
	delete(m.data, key)
	return nil
}

// Len reports the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
