// Package testmodels holds entity types used as object-keyed entities in tests.
package testmodels

import "github.com/go-openapi/strfmt"

type Wallet struct {

	// Address of the wallet.
	// Required: true
	Address string `json:"Address"`

	// Public key of the wallet owner.
	PublicKey string `json:"PublicKey,omitempty"`

	// Timestamp when the wallet was first seen.
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"CreatedAt"`
}

type Block struct {

	// Unique identifier for the block.
	// Required: true
	ID string `json:"Id"`

	// Height of the block in the chain.
	Height uint64 `json:"Height"`

	// Timestamp when the block was forged.
	// Format: date-time
	Timestamp strfmt.DateTime `json:"Timestamp"`
}
