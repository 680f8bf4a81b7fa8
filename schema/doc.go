/*
Package schema declares the attribute names an index accepts.

Attributes are declared either in code, typically from init() functions:

	func init() {
	    schema.MustRegister(
	        schema.Attribute{Name: "wallet.balance"},
	        schema.Attribute{Name: "wallet.nonce"},
	    )
	}

or in a YAML or TOML file:

	attributes:
	  - name: wallet.balance
	    description: Spendable balance
	  - name: delegate.lastBlock.timestamp
	    format: date-time

Either way, a Schema is bound into an index at startup:

	s, err := schema.Load("attributes.yaml")
	s.Apply(index)
	schema.Registered().Apply(index)

Format values are checked against the go-openapi/strfmt default registry.
They document intent only; stored values are never validated against them.
*/
package schema
