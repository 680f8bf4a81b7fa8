/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrindex

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suparena/attrindex/datastore"
	"github.com/suparena/attrindex/datastore/memory"
	"github.com/suparena/attrindex/datastore/weakref"
	"github.com/suparena/attrindex/errors"
)

// Index is a schema-gated attribute store. Values are kept per entity under
// dotted attribute names, and only names that have been bound may be read or written.
//
// Index is safe for concurrent use. Each operation checks the bound set and
// then touches a single store, each under its own lock; an operation racing
// an Unbind of the same name may see the name either bound or unbound.
type Index struct {
	mu        sync.RWMutex
	known     map[string]struct{}
	primitive datastore.Store
	object    datastore.Store
	logger    zerolog.Logger
}

// Stats is a point-in-time summary of an Index
type Stats struct {
	Bound            int `json:"bound"`
	PrimitiveRecords int `json:"primitiveRecords"`
	ObjectRecords    int `json:"objectRecords"`
}

// Option configures an Index
type Option func(*options)

type options struct {
	logger     zerolog.Logger
	primitive  datastore.Store
	object     datastore.Store
	attributes []string
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPrimitiveStore replaces the store used for primitive ids
func WithPrimitiveStore(s datastore.Store) Option {
	return func(o *options) {
		o.primitive = s
	}
}

// WithObjectStore replaces the store used for object references
func WithObjectStore(s datastore.Store) Option {
	return func(o *options) {
		o.object = s
	}
}

// WithAttributes binds the given names at construction
func WithAttributes(names ...string) Option {
	return func(o *options) {
		o.attributes = append(o.attributes, names...)
	}
}

// New creates an Index
func New(opts ...Option) *Index {
	o := options{logger: zerolog.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.primitive == nil {
		o.primitive = memory.New()
	}
	if o.object == nil {
		o.object = weakref.New()
	}

	x := &Index{
		known:     make(map[string]struct{}, len(o.attributes)),
		primitive: o.primitive,
		object:    o.object,
		logger:    o.logger,
	}
	for _, name := range o.attributes {
		x.known[name] = struct{}{}
	}
	return x
}

// Bind registers name as a valid attribute. It returns false if name was already bound.
func (x *Index) Bind(name string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.known[name]; ok {
		return false
	}
	x.known[name] = struct{}{}
	x.logger.Debug().Str("attribute", name).Msg("attribute bound")
	return true
}

// Unbind removes name from the bound set. Values already stored under name are
// kept and become reachable again once name is re-bound.
func (x *Index) Unbind(name string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.known[name]; !ok {
		return false
	}
	delete(x.known, name)
	x.logger.Debug().Str("attribute", name).Msg("attribute unbound")
	return true
}

// IsBound reports whether name is bound
func (x *Index) IsBound(name string) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	_, ok := x.known[name]
	return ok
}

// Bound returns the bound names in sorted order
func (x *Index) Bound() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	names := make([]string, 0, len(x.known))
	for name := range x.known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the value of name for id, or def if the entity holds no such value.
func (x *Index) Get(id EntityID, name string, def any) (any, error) {
	v, ok, err := x.Lookup(id, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Lookup returns the value of name for id and whether it was present.
func (x *Index) Lookup(id EntityID, name string) (any, bool, error) {
	s, err := x.storeFor("get", id, name)
	if err != nil {
		return nil, false, err
	}
	v, ok := s.Get(id.key, name)
	return v, ok, nil
}

// Set stores value under name for id, creating the entity's record and any
// intermediate path segments as needed. It reports whether the value is present
// afterwards, which is false only when an object reference has already been reclaimed.
func (x *Index) Set(id EntityID, name string, value any) (bool, error) {
	s, err := x.storeFor("set", id, name)
	if err != nil {
		return false, err
	}
	return s.Set(id.key, name, value), nil
}

// Forget removes the value of name for id. It reports whether a value was
// present before the call, for primitive ids and object references alike.
func (x *Index) Forget(id EntityID, name string) (bool, error) {
	s, err := x.storeFor("forget", id, name)
	if err != nil {
		return false, err
	}
	return s.Unset(id.key, name), nil
}

// Has reports whether id holds a value for name. Zero values count as present.
func (x *Index) Has(id EntityID, name string) (bool, error) {
	s, err := x.storeFor("has", id, name)
	if err != nil {
		return false, err
	}
	return s.Has(id.key, name), nil
}

// Stats returns counts of bound names and entity records
func (x *Index) Stats() Stats {
	x.mu.RLock()
	bound := len(x.known)
	x.mu.RUnlock()

	return Stats{
		Bound:            bound,
		PrimitiveRecords: x.primitive.Len(),
		ObjectRecords:    x.object.Len(),
	}
}

// storeFor enforces the bound-name gate and routes id to its backend.
func (x *Index) storeFor(op string, id EntityID, name string) (datastore.Store, error) {
	if !x.IsBound(name) {
		x.logger.Warn().Str("op", op).Str("attribute", name).Msg("access to unknown attribute")
		return nil, errors.NewUnknownAttributeError(op, name)
	}

	switch id.kind {
	case primitiveID:
		return x.primitive, nil
	case objectID:
		return x.object, nil
	default:
		return nil, errors.NewValidationError("id", "entity id is not set")
	}
}
