/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the Store interface for testing
package mock

import (
	"sync"

	"github.com/suparena/attrindex/attrpath"
	"github.com/suparena/attrindex/datastore"
)

// Call records a single Store invocation
type Call struct {
	Method string
	Key    any
	Path   string
}

// Store is a mock implementation of datastore.Store for testing
type Store struct {
	mu       sync.RWMutex
	records  map[any]attrpath.Record
	calls    []Call
	getFunc  func(key datastore.Key, path string) (any, bool)
	rejectOn func(key datastore.Key) bool
}

// New creates a new mock Store
func New() *Store {
	return &Store{
		records: make(map[any]attrpath.Record),
	}
}

// WithGetFunc overrides Get for testing
func (m *Store) WithGetFunc(f func(key datastore.Key, path string) (any, bool)) *Store {
	m.getFunc = f
	return m
}

// WithRejectFunc makes Set drop writes for keys matching f
func (m *Store) WithRejectFunc(f func(key datastore.Key) bool) *Store {
	m.rejectOn = f
	return m
}

// Get resolves path within the entity's record. A nested record is returned as a copy.
func (m *Store) Get(key datastore.Key, path string) (any, bool) {
	m.record("Get", key, path)
	if m.getFunc != nil {
		return m.getFunc(key, path)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := attrpath.Get(m.records[key.Comparable()], path)
	return attrpath.Clone(v), ok
}

// Set writes value at path
func (m *Store) Set(key datastore.Key, path string, value any) bool {
	m.record("Set", key, path)
	if m.rejectOn != nil && m.rejectOn(key) {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	k := key.Comparable()
	r, ok := m.records[k]
	if !ok {
		r = attrpath.Record{}
		m.records[k] = r
	}
	attrpath.Set(r, path, attrpath.Clone(value))
	return attrpath.Has(r, path)
}

// Has reports whether path resolves within the entity's record
func (m *Store) Has(key datastore.Key, path string) bool {
	m.record("Has", key, path)

	m.mu.RLock()
	defer m.mu.RUnlock()
	return attrpath.Has(m.records[key.Comparable()], path)
}

// Unset removes the value at path
func (m *Store) Unset(key datastore.Key, path string) bool {
	m.record("Unset", key, path)

	m.mu.Lock()
	defer m.mu.Unlock()
	return attrpath.Unset(m.records[key.Comparable()], path)
}

// Len returns the number of entity records
func (m *Store) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Helper methods for testing

// Calls returns a copy of the recorded invocations
func (m *Store) Calls() []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Call, len(m.calls))
	copy(result, m.calls)
	return result
}

// CallCount returns the number of recorded invocations
func (m *Store) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}

// Clear removes all records and recorded calls
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[any]attrpath.Record)
	m.calls = nil
}

func (m *Store) record(method string, key datastore.Key, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Method: method, Key: key.Comparable(), Path: path})
}

var _ datastore.Store = (*Store)(nil)
