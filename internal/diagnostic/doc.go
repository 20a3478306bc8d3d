// Package diagnostic defines the error taxonomy shared by the
// transformation engine.
//
// Every engine failure is classified by a Kind:
//   - KindConfig: malformed mapping lines, invalid destinations,
//     unresolvable output columns, missing required mappings
//   - KindExpression: bad column references, unknown or failing
//     expression functions, structured values in string-only positions
//   - KindTreeAssembly: malformed relative paths in structured values,
//     identifier placeholder resolution failures
//   - KindEncoding: reserved for the ANVL codec (never produced; its
//     escaping is total)
//
// Errors are created near their source and annotated with positional
// context (mapping line, record number) by the orchestrating layer via
// Annotate, which preserves the kind for errors.As/IsKind checks.
package diagnostic
