/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

// Key identifies an entity inside a Store.
type Key interface {
	// Comparable returns the map key under which the entity's record is kept.
	Comparable() any
}

// Reclaimable is a Key whose entity is owned elsewhere and may be garbage collected.
type Reclaimable interface {
	Key
	// OnReclaim arranges for fn to run once the entity has been reclaimed.
	// It reports false if the entity is already gone.
	OnReclaim(fn func()) bool
}

// Store holds one nested attribute record per entity and resolves attribute
// paths within it. Nested records cross the interface by copy in both
// directions, so callers never alias a Store's internal state.
type Store interface {
	Get(key Key, path string) (any, bool)

	// Set writes value at path, creating the entity's record on first write.
	// It reports whether the value is present afterwards.
	Set(key Key, path string, value any) bool

	Has(key Key, path string) bool

	// Unset removes the value at path and reports whether it was present.
	Unset(key Key, path string) bool

	// Len returns the number of entity records currently held.
	Len() int
}
