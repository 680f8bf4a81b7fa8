/*
Package datastore defines the storage contract behind an attribute index.

The main interface is Store, which keeps one nested record per entity and
resolves dotted attribute paths inside it:

	type Store interface {
	    Get(key Key, path string) (any, bool)
	    Set(key Key, path string, value any) bool
	    Has(key Key, path string) bool
	    Unset(key Key, path string) bool
	    Len() int
	}

Implementations:
  - memory: records keyed by a primitive entity id
  - weakref: records keyed by object identity, without keeping the object alive
  - mock: recording implementation for testing

Stores never validate attribute names; gating on bound names happens in the
index before a Store is reached.
*/
package datastore
