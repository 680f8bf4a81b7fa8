/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides the primitive-keyed attribute store.
package memory

import (
	"sync"

	"github.com/suparena/attrindex/attrpath"
	"github.com/suparena/attrindex/datastore"
)

// Store keeps every entity's record inside one map keyed by the entity's
// comparable key (the stringified primitive id).
type Store struct {
	mu      sync.RWMutex
	records map[any]attrpath.Record
}

// New creates an empty Store
func New() *Store {
	return &Store{
		records: make(map[any]attrpath.Record),
	}
}

// Get resolves path within the entity's record. A nested record is returned as a copy.
func (s *Store) Get(key datastore.Key, path string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := attrpath.Get(s.records[key.Comparable()], path)
	return attrpath.Clone(v), ok
}

// Set writes a copy of value at path, creating the entity's record if needed
func (s *Store) Set(key datastore.Key, path string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.Comparable()
	r, ok := s.records[k]
	if !ok {
		r = attrpath.Record{}
		s.records[k] = r
	}
	attrpath.Set(r, path, attrpath.Clone(value))
	return attrpath.Has(r, path)
}

// Has reports whether path resolves within the entity's record
func (s *Store) Has(key datastore.Key, path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return attrpath.Has(s.records[key.Comparable()], path)
}

// Unset removes the value at path. A record left empty is dropped.
func (s *Store) Unset(key datastore.Key, path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.Comparable()
	r, ok := s.records[k]
	if !ok {
		return false
	}
	removed := attrpath.Unset(r, path)
	if len(r) == 0 {
		delete(s.records, k)
	}
	return removed
}

// Len returns the number of entity records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

var _ datastore.Store = (*Store)(nil)
