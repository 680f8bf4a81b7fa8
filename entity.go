/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrindex

import (
	"fmt"

	"github.com/suparena/attrindex/datastore"
)

// Primitive lists the kinds usable as primitive entity ids.
type Primitive interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type idKind uint8

const (
	invalidID idKind = iota
	primitiveID
	objectID
)

// EntityID scopes attribute storage to one entity. It is either a primitive id,
// made with ID, or an object reference, made with Ref. The zero value is invalid.
//
// EntityIDs are comparable.
type EntityID struct {
	kind idKind
	key  datastore.Key
}

// ID identifies an entity by a primitive value. The value is stringified, so
// ID(42) and ID("42") name the same entity.
func ID[P Primitive](v P) EntityID {
	return EntityID{kind: primitiveID, key: datastore.PrimitiveKey(fmt.Sprint(v))}
}

// Ref identifies an entity by the identity of the object p points to. Attribute
// data held for it does not keep the object alive. Ref(nil) is invalid.
// Reclaiming the data of very small pointer-free objects (Ref(&n) for an int n)
// is best-effort; see datastore.NewObjectKey.
func Ref[T any](p *T) EntityID {
	if p == nil {
		return EntityID{}
	}
	return EntityID{kind: objectID, key: datastore.NewObjectKey(p)}
}

// IsZero reports whether the id is unset.
func (id EntityID) IsZero() bool { return id.kind == invalidID }

// IsObject reports whether the id is an object reference.
func (id EntityID) IsObject() bool { return id.kind == objectID }

func (id EntityID) String() string {
	switch id.kind {
	case primitiveID:
		return string(id.key.(datastore.PrimitiveKey))
	case objectID:
		return fmt.Sprintf("ref(%T)", id.key)
	default:
		return "<invalid>"
	}
}
