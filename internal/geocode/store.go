// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geocode

import (
	"sync"
)

// Store persists geocode resolutions across process restarts. The
// resolver treats it as a plain key-value collaborator; persistence
// failures degrade to cache misses, never to lookup failures.
type Store interface {
	// Get returns the stored resolution for a cache key, if any.
	Get(key string) (Resolution, bool, error)

	// Put stores a resolution under a cache key.
	Put(key string, res Resolution) error
}

// MemoryStore is a Store backed by a plain map. Used in tests and when
// no cache path is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Resolution
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Resolution)}
}

// Get returns the stored resolution for a key.
func (s *MemoryStore) Get(key string) (Resolution, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.entries[key]
	return res, ok, nil
}

// Put stores a resolution.
func (s *MemoryStore) Put(key string, res Resolution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = res
	return nil
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
