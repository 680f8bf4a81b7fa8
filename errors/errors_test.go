/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnknownAttributeError(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		attribute string
		expected  string
	}{
		{
			name:      "with operation",
			operation: "get",
			attribute: "wallet.balance",
			expected:  "get: tried to access an unknown attribute: wallet.balance",
		},
		{
			name:      "without operation",
			attribute: "wallet.nonce",
			expected:  "tried to access an unknown attribute: wallet.nonce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUnknownAttributeError(tt.operation, tt.attribute)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrUnknownAttribute) {
				t.Error("UnknownAttributeError should match ErrUnknownAttribute")
			}

			if !IsUnknownAttribute(err) {
				t.Error("IsUnknownAttribute should return true for UnknownAttributeError")
			}

			var uae *UnknownAttributeError
			if !errors.As(err, &uae) || uae.Attribute != tt.attribute {
				t.Errorf("Expected errors.As to expose attribute %q", tt.attribute)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("index", "wallets")

	expected := `index with key "wallets" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("index", "wallets")

	expected := `index with key "wallets" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "id",
			message:  "object reference is nil",
			expected: `validation failed for field "id": object reference is nil`,
		},
		{
			name:     "without field",
			message:  "empty schema",
			expected: "validation failed: empty schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewUnknownAttributeError("set", "wallet.balance")
	wrapped := fmt.Errorf("applying block: %w", original)

	if !IsUnknownAttribute(wrapped) {
		t.Error("IsUnknownAttribute should work with wrapped errors")
	}
	if IsNotFound(wrapped) {
		t.Error("Wrapped UnknownAttributeError should not match ErrNotFound")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrUnknownAttribute,
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
