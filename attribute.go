/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrindex

import (
	"fmt"
	"reflect"

	"github.com/suparena/attrindex/errors"
)

// Attribute provides type-safe access to a single attribute of an Index
type Attribute[T any] struct {
	index *Index
	name  string
}

// NewAttribute binds name on index and returns a typed handle for it
func NewAttribute[T any](index *Index, name string) *Attribute[T] {
	index.Bind(name)
	return &Attribute[T]{index: index, name: name}
}

// Name returns the attribute name
func (a *Attribute[T]) Name() string {
	return a.name
}

// Get returns the value for id and whether it was present. A stored value of
// another type is reported as a validation error.
func (a *Attribute[T]) Get(id EntityID) (T, bool, error) {
	var zero T

	v, ok, err := a.index.Lookup(id, a.name)
	if err != nil || !ok {
		return zero, false, err
	}
	if v == nil {
		return zero, true, nil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, false, errors.NewValidationError(a.name,
			fmt.Sprintf("stored value has type %T, want %s", v, reflect.TypeFor[T]()))
	}
	return typed, true, nil
}

// GetOr returns the value for id, or def if none is stored
func (a *Attribute[T]) GetOr(id EntityID, def T) (T, error) {
	v, ok, err := a.Get(id)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Set stores v for id
func (a *Attribute[T]) Set(id EntityID, v T) (bool, error) {
	return a.index.Set(id, a.name, v)
}

// Has reports whether id holds a value
func (a *Attribute[T]) Has(id EntityID) (bool, error) {
	return a.index.Has(id, a.name)
}

// Forget removes the value for id and reports whether it was present
func (a *Attribute[T]) Forget(id EntityID) (bool, error) {
	return a.index.Forget(id, a.name)
}
