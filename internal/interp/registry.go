package interp

// Func is a pluggable expression function. It receives the referenced
// column values as positional arguments and returns either Text or a
// structured Children value.
type Func func(args ...string) (Value, error)

// Registry maps function names to implementations. It is built once at
// startup and passed explicitly into Interpolate; it is never mutated
// during row processing.
type Registry map[string]Func
