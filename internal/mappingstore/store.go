// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package mappingstore persists original → replacement mappings across
// runs, so the same original value anonymizes to the same replacement in
// every document that shares a store.
//
// Two implementations are provided: Memory keeps mappings for the life of
// the process and backs tests; Bolt is an embedded key-value store (bbolt)
// that survives restarts.
package mappingstore

import (
	"fmt"
	"sync"

	"textscrub/internal/detector"

	bolt "go.etcd.io/bbolt"
)

// Store is the replacement-mapping persistence interface. Load returns a
// copy the caller may mutate; Save writes the caller's mapping back.
// Implementations must be safe for concurrent use.
type Store interface {
	Load() (detector.ReplacementMapping, error)
	Save(detector.ReplacementMapping) error
	Close() error
}

// Open returns a Bolt store at path, or a Memory store when path is empty.
func Open(path string) (Store, error) {
	if path == "" {
		return Memory(), nil
	}
	return Bolt(path)
}

// --- memory --------------------------------------------------------------

type memoryStore struct {
	mu      sync.RWMutex
	mapping detector.ReplacementMapping
}

// Memory returns a Store that holds the mapping for the life of the
// process only.
func Memory() Store {
	return &memoryStore{mapping: make(detector.ReplacementMapping)}
}

func (s *memoryStore) Load() (detector.ReplacementMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(detector.ReplacementMapping, len(s.mapping))
	for k, v := range s.mapping {
		out[k] = v
	}
	return out, nil
}

func (s *memoryStore) Save(mapping detector.ReplacementMapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range mapping {
		s.mapping[k] = v
	}
	return nil
}

func (s *memoryStore) Close() error { return nil }

// --- bolt ----------------------------------------------------------------

const boltBucket = "replacements"

type boltStore struct {
	db *bolt.DB
}

// Bolt opens (or creates) the bbolt database at path and ensures the
// replacements bucket exists.
func Bolt(path string) (Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open mapping store %q: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create mapping bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

func (s *boltStore) Load() (detector.ReplacementMapping, error) {
	mapping := make(detector.ReplacementMapping)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			mapping[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load mapping: %w", err)
	}
	return mapping, nil
}

// Save upserts every entry. Mappings only grow, entries are never removed,
// so keys absent from the argument are left in place.
func (s *boltStore) Save(mapping detector.ReplacementMapping) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return fmt.Errorf("bucket %q not found", boltBucket)
		}
		for k, v := range mapping {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save mapping: %w", err)
	}
	return nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
