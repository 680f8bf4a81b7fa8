/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package weakref provides the object-keyed attribute store. Records are keyed
// by object identity and are evicted once the object is garbage collected.
package weakref

import (
	"sync"

	"github.com/suparena/attrindex/attrpath"
	"github.com/suparena/attrindex/datastore"
)

// Store associates object identities with attribute records without owning the
// objects. Keys must implement datastore.Reclaimable.
//
// A stored value that references its own key object keeps that object reachable,
// so its record is never evicted.
type Store struct {
	mu      sync.RWMutex
	records map[any]attrpath.Record
	evicted int
}

// New creates an empty Store
func New() *Store {
	return &Store{
		records: make(map[any]attrpath.Record),
	}
}

// Get resolves path within the object's record. A nested record is returned as a copy.
func (s *Store) Get(key datastore.Key, path string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := attrpath.Get(s.records[key.Comparable()], path)
	return attrpath.Clone(v), ok
}

// Set writes value at path. The first write for an object registers an eviction
// hook; Set reports false when the object is already gone or the key is not reclaimable.
func (s *Store) Set(key datastore.Key, path string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.Comparable()
	r, ok := s.records[k]
	if !ok {
		rk, reclaimable := key.(datastore.Reclaimable)
		if !reclaimable {
			return false
		}
		if !rk.OnReclaim(func() { s.evict(k) }) {
			return false
		}
		r = attrpath.Record{}
		s.records[k] = r
	}
	attrpath.Set(r, path, attrpath.Clone(value))
	return attrpath.Has(r, path)
}

// Has reports whether path resolves within the object's record
func (s *Store) Has(key datastore.Key, path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return attrpath.Has(s.records[key.Comparable()], path)
}

// Unset removes the value at path. The record itself lives until the object is reclaimed.
func (s *Store) Unset(key datastore.Key, path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return attrpath.Unset(s.records[key.Comparable()], path)
}

// Len returns the number of object records not yet evicted
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Evicted returns how many records have been dropped because their object was reclaimed
func (s *Store) Evicted() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.evicted
}

// evict runs on the runtime's cleanup goroutine.
func (s *Store) evict(k any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[k]; ok {
		delete(s.records, k)
		s.evicted++
	}
}

var _ datastore.Store = (*Store)(nil)
