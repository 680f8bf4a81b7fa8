/*
Package attrpath resolves dot-delimited attribute paths over nested records.

A path such as "wallet.balance" addresses the "balance" key of the record stored
under "wallet":

	r := attrpath.Record{}
	attrpath.Set(r, "wallet.balance", 100)
	v, ok := attrpath.Get(r, "wallet.balance") // 100, true
	attrpath.Has(r, "wallet.nonce")             // false
	attrpath.Unset(r, "wallet.balance")         // true

Reads never fail: a missing segment, or an intermediate that is not a Record,
resolves to "absent". Writes create intermediate records lazily and replace any
intermediate leaf that stands in the way (last write wins, no merge).
*/
package attrpath
