package mapping

import "strings"

// Rule maps one destination to one interpolation expression.
// Rules are immutable and ordered; order determines assembly order.
type Rule struct {
	// Destination is a flat element name or an absolute document path.
	Destination string

	// Expression is the interpolation expression evaluated per row.
	Expression string
}

// IsDocumentPath reports whether the rule builds into the hierarchical
// document rather than a flat metadata element.
func (r Rule) IsDocumentPath() bool {
	return strings.HasPrefix(r.Destination, "/")
}

// FlatKeys returns the flat-element destinations in rule order.
func FlatKeys(rules []Rule) []string {
	var keys []string

	for _, r := range rules {
		if !r.IsDocumentPath() {
			keys = append(keys, r.Destination)
		}
	}

	return keys
}
