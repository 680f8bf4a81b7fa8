/*
Package errors provides semantic error types for the attrindex library.

The package defines the library's failure modes with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrUnknownAttribute = errors.New("unknown attribute")
	    ErrNotFound         = errors.New("not found")
	    ErrAlreadyExists    = errors.New("already exists")
	    ErrInvalidInput     = errors.New("invalid input")
	)

Usage:

	// Check error type
	balance, err := index.Get(attrindex.ID(42), "wallet.balance", 0)
	if err != nil {
	    if errors.IsUnknownAttribute(err) {
	        // The attribute was never bound: a schema bug, not a runtime condition
	        return fmt.Errorf("schema mismatch: %w", err)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewUnknownAttributeError("get", "wallet.balance")
	err := errors.NewValidationError("id", "object reference is nil")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
