// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geocode

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefix for geocode entries in BadgerDB.
const geocodeKeyPrefix = "geocode:"

// TTLs for persisted resolutions. Resolved entries are effectively
// stable (places do not change country); unresolved entries expire
// sooner so a later, better-behaved lookup can retry.
const (
	resolvedTTL   = 180 * 24 * time.Hour
	unresolvedTTL = 7 * 24 * time.Hour
)

// BadgerStore implements Store using BadgerDB for durable caching of
// geocode results across restarts, keeping load off the external
// geocoder.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore creates a BadgerDB-backed geocode store.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Get returns the stored resolution for a cache key.
func (s *BadgerStore) Get(key string) (Resolution, bool, error) {
	var res Resolution
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(geocodeKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &res)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Resolution{}, false, nil
	}
	if err != nil {
		return Resolution{}, false, fmt.Errorf("get geocode entry: %w", err)
	}
	return res, true, nil
}

// Put stores a resolution with a TTL depending on its status.
func (s *BadgerStore) Put(key string, res Resolution) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal geocode entry: %w", err)
	}

	ttl := resolvedTTL
	if !res.Resolved() {
		ttl = unresolvedTTL
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(geocodeKeyPrefix+key), data).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("set geocode entry: %w", err)
	}
	return nil
}
