package record

import (
	"metabatch/internal/diagnostic"
	"metabatch/internal/doctree"
	"metabatch/internal/interp"
	"metabatch/internal/mapping"
)

// Record is the flat metadata produced from one input row.
type Record map[string]string

// DocumentKey is the reserved record key holding the serialized
// document when any path-destination rule fired.
const DocumentKey = "datacite"

// IDKey is the reserved flat element naming the identifier.
const IDKey = mapping.IDKey

// Transformer turns input rows into metadata records. It is built once
// per run and holds only read-only state, so transforming a row is a
// pure function of (rules, row, registry).
type Transformer struct {
	Rules []mapping.Rule
	Funcs interp.Registry

	// Shoulder is the mint shoulder used to classify the identifier
	// type at finalization. When empty, the row's _id field is used
	// instead (create and update operations).
	Shoulder string
}

// Transform applies every rule, in order, to row. Failures are
// attributed to the originating rule's 1-based position.
func (t *Transformer) Transform(row []string) (Record, error) {
	rec := make(Record)

	var root *doctree.Element

	for i, rule := range t.Rules {
		value, err := interp.Interpolate(rule.Expression, row, t.Funcs)
		if err != nil {
			return nil, diagnostic.Annotate(err, "mapping line %d", i+1)
		}

		if rule.IsDocumentPath() {
			root, err = doctree.Assign(root, rule.Destination, value)
			if err != nil {
				return nil, diagnostic.Annotate(err, "mapping line %d", i+1)
			}

			continue
		}

		text, ok := value.(interp.Text)
		if !ok {
			return nil, diagnostic.Annotate(
				diagnostic.Newf(diagnostic.KindExpression,
					"element %s requires a string value", rule.Destination),
				"mapping line %d", i+1)
		}

		// Last write wins on repeated flat destinations.
		rec[rule.Destination] = string(text)
	}

	if root != nil {
		shoulder := t.Shoulder
		if shoulder == "" {
			shoulder = rec[IDKey]
		}

		if err := doctree.Finalize(root, shoulder); err != nil {
			return nil, err
		}

		rec[DocumentKey] = doctree.Serialize(root)
	}

	return rec, nil
}
