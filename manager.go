/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrindex

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suparena/attrindex/errors"
)

// Manager keeps one Index per owning context, addressed by name.
// It is safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	logger  zerolog.Logger
	indexes map[string]*Index
}

// NewManager creates a Manager whose indexes log through logger
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		logger:  logger,
		indexes: make(map[string]*Index),
	}
}

// Index returns the index registered under name, creating it if necessary
func (m *Manager) Index(name string) *Index {
	m.mu.Lock()
	defer m.mu.Unlock()

	if idx, exists := m.indexes[name]; exists {
		return idx
	}

	idx := New(WithLogger(m.logger.With().Str("index", name).Logger()))
	m.indexes[name] = idx
	return idx
}

// Register stores idx under name
func (m *Manager) Register(name string, idx *Index) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.indexes[name]; exists {
		return errors.NewAlreadyExistsError("index", name)
	}
	m.indexes[name] = idx
	return nil
}

// Lookup retrieves the index registered under name
func (m *Manager) Lookup(name string) (*Index, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, exists := m.indexes[name]
	if !exists {
		return nil, errors.NewNotFoundError("index", name)
	}
	return idx, nil
}

// Remove discards the index registered under name together with its data
func (m *Manager) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.indexes[name]; !exists {
		return errors.NewNotFoundError("index", name)
	}
	delete(m.indexes, name)
	return nil
}

// Names returns all registered index names in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.indexes))
	for k := range m.indexes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
