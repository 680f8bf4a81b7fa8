/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"runtime"
	"weak"
)

// PrimitiveKey identifies an entity by its stringified primitive id.
type PrimitiveKey string

func (k PrimitiveKey) Comparable() any { return string(k) }

// ObjectKey identifies an entity by the identity of the object it was made from.
// It holds only a weak reference; two keys made from the same pointer compare equal,
// even after the object is gone.
type ObjectKey[T any] struct {
	ptr weak.Pointer[T]
}

// NewObjectKey creates a key for the object p points to.
// Zero-sized objects share an address and therefore cannot be told apart.
//
// Pointer-free objects smaller than 16 bytes, such as a lone int, may share a
// tiny-allocator block with unrelated objects. Their cleanup only runs once
// the whole block is unreachable, so eviction for such keys is best-effort
// and may never happen.
func NewObjectKey[T any](p *T) ObjectKey[T] {
	return ObjectKey[T]{ptr: weak.Make(p)}
}

func (k ObjectKey[T]) Comparable() any { return k.ptr }

// Value returns the object, or nil once it has been reclaimed.
func (k ObjectKey[T]) Value() *T { return k.ptr.Value() }

// OnReclaim registers fn as a runtime cleanup on the object.
func (k ObjectKey[T]) OnReclaim(fn func()) bool {
	p := k.ptr.Value()
	if p == nil {
		return false
	}
	runtime.AddCleanup(p, func(struct{}) { fn() }, struct{}{})
	return true
}

var (
	_ Key         = PrimitiveKey("")
	_ Reclaimable = ObjectKey[struct{}]{}
)
