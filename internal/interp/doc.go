// Package interp resolves mapping expressions against one input row.
//
// Expression grammar: literal text interspersed with placeholders.
//
//	$$                  literal dollar sign
//	$N or ${N}          value of the 1-based input column N
//	${N1,N2,...:name}   call function "name" from the registry with the
//	                    listed columns as positional arguments
//
// Functions are looked up by name at call time, not at load time, so a
// missing function is only detected when a row exercises it. A function
// may return plain text, which concatenates with the surrounding
// expression like a column reference, or a structured Children value,
// which is legal only when the placeholder is the entire expression.
//
// Final text results are trimmed of surrounding whitespace; structured
// results are passed through untouched.
package interp
