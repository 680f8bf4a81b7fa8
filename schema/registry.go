/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"sync"
)

// Process-wide attribute registrations, populated from init() functions.
var (
	registered []Attribute
	names      = make(map[string]struct{})
	mu         sync.RWMutex
)

// MustRegister adds attributes to the process-wide schema.
// It panics on an invalid or already registered name to catch conflicting
// schema declarations at startup.
func MustRegister(attrs ...Attribute) {
	mu.Lock()
	defer mu.Unlock()

	for _, attr := range attrs {
		if err := ValidateName(attr.Name); err != nil {
			panic(fmt.Sprintf("schema registry: %v", err))
		}
		if _, exists := names[attr.Name]; exists {
			panic(fmt.Sprintf("schema registry: attribute %q already registered", attr.Name))
		}
		names[attr.Name] = struct{}{}
		registered = append(registered, attr)
	}
}

// Registered returns a snapshot of the process-wide schema in registration order.
func Registered() *Schema {
	mu.RLock()
	defer mu.RUnlock()

	attrs := make([]Attribute, len(registered))
	copy(attrs, registered)
	return &Schema{Attributes: attrs}
}
