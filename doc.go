/*
Package attrindex provides a schema-gated, in-memory attribute index: per-entity
key-value storage where keys are dotted attribute names that must be bound
before they can be read or written.

Binding guards against typos and uncoordinated schema drift across the parts of
a system that share an index. Accessing an unbound name fails with an
UnknownAttributeError before any storage is touched.

Entities are identified in one of two ways:
  - ID(v) for a primitive id (string or number), stored in one shared record keyed by the stringified id
  - Ref(p) for an object, keyed by identity; its data is dropped once the object is garbage collected

Basic Usage:

	index := attrindex.New(attrindex.WithLogger(logger))
	index.Bind("wallet.balance")

	_, err := index.Set(attrindex.ID(42), "wallet.balance", 100)
	balance, err := index.Get(attrindex.ID(42), "wallet.balance", 0)

	// Typed access
	nonce := attrindex.NewAttribute[uint64](index, "wallet.nonce")
	n, err := nonce.GetOr(attrindex.Ref(wallet), 0)

	// Unbound names are rejected
	_, err = index.Get(attrindex.ID(42), "wallet.balanse", 0)
	errors.IsUnknownAttribute(err) // true

Schemas can be declared in YAML or TOML and bound at startup with the schema
package. A Manager keeps one Index per owning context.
*/
package attrindex
