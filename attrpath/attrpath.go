/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrpath

import "strings"

// Separator delimits the segments of an attribute path.
const Separator = "."

// Record is a nested attribute record. Any map[string]any found along a path is
// traversed as a nested record; any other value is a leaf.
type Record = map[string]any

// Split breaks a dotted path into its segments. The empty path is a single empty segment.
func Split(path string) []string {
	return strings.Split(path, Separator)
}

// Join is the inverse of Split.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Get resolves path within r. It reports false if any segment is missing or an
// intermediate value is not a Record.
func Get(r Record, path string) (any, bool) {
	if r == nil {
		return nil, false
	}
	segments := Split(path)
	parent, ok := walk(r, segments[:len(segments)-1])
	if !ok {
		return nil, false
	}
	v, ok := parent[segments[len(segments)-1]]
	return v, ok
}

// Has reports whether path resolves to a value, whatever that value is.
func Has(r Record, path string) bool {
	_, ok := Get(r, path)
	return ok
}

// Set writes value at path, creating intermediate records as needed. An intermediate
// that holds a non-Record value is replaced by a fresh Record.
func Set(r Record, path string, value any) {
	segments := Split(path)
	cur := r
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].(Record)
		if !ok {
			next = Record{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segments[len(segments)-1]] = value
}

// Unset removes the value at path and reports whether it was present.
func Unset(r Record, path string) bool {
	if r == nil {
		return false
	}
	segments := Split(path)
	parent, ok := walk(r, segments[:len(segments)-1])
	if !ok {
		return false
	}
	last := segments[len(segments)-1]
	if _, ok := parent[last]; !ok {
		return false
	}
	delete(parent, last)
	return true
}

func walk(r Record, segments []string) (Record, bool) {
	cur := r
	for _, seg := range segments {
		next, ok := cur[seg].(Record)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Clone returns v with every nested record copied, so the result shares no
// record with v. Leaves, including slices and pointers, are copied shallowly.
func Clone(v any) any {
	r, ok := v.(Record)
	if !ok {
		return v
	}
	out := make(Record, len(r))
	for k, child := range r {
		out[k] = Clone(child)
	}
	return out
}
