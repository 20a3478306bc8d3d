// Package output resolves the requested output column specification
// and forms per-record result rows from it.
package output

import (
	"strconv"
	"strings"

	"metabatch/internal/diagnostic"
	"metabatch/internal/mapping"
	"metabatch/internal/record"
)

// Kind identifies what a selector extracts for the output row.
type Kind int

const (
	// KindRecordNum selects the 1-based record number (_n).
	KindRecordNum Kind = iota
	// KindIdentifier selects the assigned or prior identifier (_id).
	KindIdentifier
	// KindError selects the per-record error message (_error).
	KindError
	// KindInputColumn selects a 1-based input column.
	KindInputColumn
	// KindElement selects a flat metadata element by destination name.
	KindElement
)

// Selector is one resolved output column.
type Selector struct {
	Kind  Kind
	Index int    // 1-based input column, KindInputColumn only
	Key   string // flat destination, KindElement only
}

// DefaultSpec is the output column list used when none is requested.
const DefaultSpec = "_n,_id,_error"

// Resolve validates the comma-separated spec against the loaded rules.
// Every token must be a reserved name, a positive column index, or a
// flat-key mapping destination; anything else is a config error raised
// before any row is read.
func Resolve(spec string, rules []mapping.Rule) ([]Selector, error) {
	elements := make(map[string]bool)
	for _, key := range mapping.FlatKeys(rules) {
		elements[key] = true
	}

	var selectors []Selector

	for _, token := range strings.Split(spec, ",") {
		switch {
		case token == "_n":
			selectors = append(selectors, Selector{Kind: KindRecordNum})
		case token == "_id":
			selectors = append(selectors, Selector{Kind: KindIdentifier})
		case token == "_error":
			selectors = append(selectors, Selector{Kind: KindError})
		case elements[token]:
			selectors = append(selectors, Selector{Kind: KindElement, Key: token})
		default:
			n, err := strconv.Atoi(token)
			if err != nil || n < 1 {
				return nil, diagnostic.Newf(diagnostic.KindConfig,
					"no such output column: %s", token)
			}

			selectors = append(selectors, Selector{Kind: KindInputColumn, Index: n})
		}
	}

	return selectors, nil
}

// CheckWidth verifies that no column selector exceeds the input width.
// Called once, as soon as the first row fixes the width.
func CheckWidth(selectors []Selector, width int) error {
	for _, s := range selectors {
		if s.Kind == KindInputColumn && s.Index > width {
			return diagnostic.Newf(diagnostic.KindConfig,
				"output column %d exceeds input width %d", s.Index, width)
		}
	}

	return nil
}

// FormRow builds one output row from the input row, the transformed
// record, and the registration outcome.
func FormRow(selectors []Selector, row []string, rec record.Record, recordNum int, id, errMsg string) []string {
	out := make([]string, 0, len(selectors))

	for _, s := range selectors {
		switch s.Kind {
		case KindRecordNum:
			out = append(out, strconv.Itoa(recordNum))
		case KindIdentifier:
			out = append(out, id)
		case KindError:
			out = append(out, errMsg)
		case KindInputColumn:
			if s.Index <= len(row) {
				out = append(out, row[s.Index-1])
			} else {
				out = append(out, "")
			}
		case KindElement:
			out = append(out, rec[s.Key])
		}
	}

	return out
}
