package store

import "sync"

// KeyLock serializes read-modify-write sequences per key. The underlying
// store gives no isolation within a key, so every mutation of a shared
// record must run under that record's lock: lock, read, modify, write,
// unlock. One lock guards one key; operations on distinct keys proceed
// concurrently.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyLock returns an empty lock registry.
func NewKeyLock() *KeyLock {
	return &KeyLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use, and returns the
// matching unlock function.
func (l *KeyLock) Lock(key string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
