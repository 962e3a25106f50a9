// Package lock provides an in-process lock manager keyed by resource identifier.
//
// The dispatch and charging engines must serialize concurrent callers that
// contend for the same resource (the same order during an assignment race, the
// same charging port or driver during session start) while letting callers for
// different resources proceed fully in parallel. KeyedMutex gives each key its
// own mutex and reference-counts entries so the map does not grow with every
// identifier ever seen.
package lock

import "sync"

// KeyedMutex serializes critical sections per key. The zero value is not
// usable; create instances via NewKeyedMutex.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty lock manager.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*entry)}
}

// Lock acquires the mutex for key, creating it on first use.
// Callers must pair every Lock with an Unlock for the same key.
func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key and removes the entry once no other
// caller holds or waits on it.
func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		panic("lock: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
