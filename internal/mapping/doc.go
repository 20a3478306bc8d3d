// Package mapping loads and validates mapping rules from the
// line-oriented configuration format.
//
// One rule per line:
//
//	destination = expression
//
// The destination is either a flat metadata element name (dots allowed,
// e.g. "erc.who" or "_id") or an absolute document path rooted at the
// resource element, optionally targeting an attribute:
//
//	title = $1
//	/resource/titles/title = $2
//	/resource/titles/title@titleType = Subtitle
//
// Exactly one "=" is allowed per line; there is no comment syntax, no
// blank-line tolerance, and no escaping. Loading is all-or-nothing: the
// first invalid line aborts the load with its 1-based line number.
package mapping
