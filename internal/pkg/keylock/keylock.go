// Package keylock provides mutual exclusion per string key.
package keylock

import "sync"

type entry struct {
	mu      sync.Mutex
	waiters int
}

// KeyLock serializes callers that share a key while letting different keys
// proceed in parallel. Entries are dropped once nobody holds or waits on them.
//
// The zero value is ready to use.
type KeyLock struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *KeyLock {
	return &KeyLock{}
}

// Lock blocks until key is free and returns the matching unlock function.
//
//	unlock := locks.Lock(orderID)
//	defer unlock()
func (l *KeyLock) Lock(key string) func() {
	l.mu.Lock()
	if l.entries == nil {
		l.entries = make(map[string]*entry)
	}
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.waiters++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.waiters--
			if e.waiters == 0 {
				delete(l.entries, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or waited on.
func (l *KeyLock) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
