/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"testing"

	"github.com/suparena/attrindex/datastore"
	"github.com/suparena/attrindex/datastore/mock"
)

func TestMockStore(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		mockStore := mock.New()
		key := datastore.PrimitiveKey("123")

		if !mockStore.Set(key, "name", "Test") {
			t.Fatal("Set failed")
		}

		v, ok := mockStore.Get(key, "name")
		if !ok || v != "Test" {
			t.Fatalf("Retrieved value mismatch: %v", v)
		}

		if !mockStore.Unset(key, "name") {
			t.Fatal("Unset failed")
		}
		if mockStore.Has(key, "name") {
			t.Fatal("Expected value to be gone")
		}
	})

	t.Run("RecordsCalls", func(t *testing.T) {
		mockStore := mock.New()
		key := datastore.PrimitiveKey("1")

		mockStore.Set(key, "a", 1)
		mockStore.Get(key, "a")
		mockStore.Has(key, "a")
		mockStore.Unset(key, "a")

		calls := mockStore.Calls()
		want := []string{"Set", "Get", "Has", "Unset"}
		if len(calls) != len(want) {
			t.Fatalf("Expected %d calls, got %d", len(want), len(calls))
		}
		for i, c := range calls {
			if c.Method != want[i] || c.Key != "1" || c.Path != "a" {
				t.Fatalf("Unexpected call %d: %+v", i, c)
			}
		}
	})

	t.Run("Injection", func(t *testing.T) {
		mockStore := mock.New().
			WithGetFunc(func(datastore.Key, string) (any, bool) { return "stubbed", true }).
			WithRejectFunc(func(k datastore.Key) bool { return k.Comparable() == "readonly" })

		if mockStore.Set(datastore.PrimitiveKey("readonly"), "a", 1) {
			t.Fatal("Expected rejected write")
		}
		if v, _ := mockStore.Get(datastore.PrimitiveKey("any"), "a"); v != "stubbed" {
			t.Fatalf("Expected stubbed value, got %v", v)
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		mockStore := mock.New()
		mockStore.Set(datastore.PrimitiveKey("1"), "a", 1)
		mockStore.Set(datastore.PrimitiveKey("2"), "a", 2)

		if mockStore.Len() != 2 {
			t.Fatalf("Expected 2 records, got %d", mockStore.Len())
		}
		if mockStore.CallCount() != 2 {
			t.Fatalf("Expected 2 calls, got %d", mockStore.CallCount())
		}

		mockStore.Clear()
		if mockStore.Len() != 0 || mockStore.CallCount() != 0 {
			t.Fatal("Expected empty mock after Clear")
		}
	})
}
