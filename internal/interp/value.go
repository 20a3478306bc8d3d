package interp

// Value is the result of interpolating one expression: plain text, or
// an ordered set of (relative path, value) entries that populate a
// document subtree in one step. The union is closed; every consumer
// switches exhaustively over Text and Children.
type Value interface {
	isValue()
}

// Text is a plain string interpolation result.
type Text string

// Entry pairs a relative document path with the value assigned at it.
type Entry struct {
	Path  string
	Value Value
}

// Children is a structured interpolation result, arbitrarily nested.
type Children []Entry

func (Text) isValue()     {}
func (Children) isValue() {}
