package interp

import (
	"regexp"
	"strconv"
	"strings"

	"metabatch/internal/diagnostic"
	"metabatch/utils"
)

// placeholderRe matches the four placeholder forms. Everything between
// matches is literal text.
var placeholderRe = regexp.MustCompile(`\$[0-9]+|\$\{[0-9]+\}|\$\{[0-9]+(?:,[0-9]+)*:[A-Za-z_]\w*\}|\$\$`)

// Interpolate resolves expr against row. The returned value is Text
// unless a function placeholder spanning the entire expression returned
// a structured result.
func Interpolate(expr string, row []string, funcs Registry) (Value, error) {
	var b strings.Builder

	last := 0

	for _, m := range placeholderRe.FindAllStringIndex(expr, -1) {
		b.WriteString(expr[last:m[0]])

		token := expr[m[0]:m[1]]
		last = m[1]

		switch {
		case token == "$$":
			b.WriteByte('$')
		case strings.HasPrefix(token, "${"):
			inner := token[2 : len(token)-1]

			indexes, name, isCall := strings.Cut(inner, ":")
			if !isCall {
				s, err := column(row, indexes)
				if err != nil {
					return nil, err
				}

				b.WriteString(s)

				continue
			}

			v, err := call(name, indexes, row, funcs)
			if err != nil {
				return nil, err
			}

			switch v := v.(type) {
			case Text:
				b.WriteString(string(v))
			case Children:
				if m[0] != 0 || m[1] != len(expr) {
					return nil, diagnostic.Newf(diagnostic.KindExpression,
						"function %s: structured result must be the entire expression", name)
				}

				return v, nil
			}
		default: // $N
			s, err := column(row, token[1:])
			if err != nil {
				return nil, err
			}

			b.WriteString(s)
		}
	}

	b.WriteString(expr[last:])

	return Text(strings.TrimSpace(b.String())), nil
}

// column resolves a 1-based column reference against row.
func column(row []string, index string) (string, error) {
	n, err := strconv.Atoi(index)
	if err != nil {
		// Unreachable: the placeholder regex only matches digits.
		return "", diagnostic.Wrap(diagnostic.KindExpression, err, "invalid column reference")
	}

	if !utils.IsInRange(1, n, len(row)) {
		return "", diagnostic.Newf(diagnostic.KindExpression,
			"column %d out of range [1, %d]", n, len(row))
	}

	return row[n-1], nil
}

// call invokes the named registry function with the listed columns as
// positional arguments. Lookup happens here, at row time.
func call(name, indexes string, row []string, funcs Registry) (Value, error) {
	fn, ok := funcs[name]
	if !ok {
		return nil, diagnostic.Newf(diagnostic.KindExpression, "unknown function %s", name)
	}

	var args []string

	for _, index := range strings.Split(indexes, ",") {
		s, err := column(row, index)
		if err != nil {
			return nil, err
		}

		args = append(args, s)
	}

	v, err := fn(args...)
	if err != nil {
		return nil, diagnostic.Wrap(diagnostic.KindExpression, err, "function "+name)
	}

	if v == nil {
		return nil, diagnostic.Newf(diagnostic.KindExpression, "function %s returned no value", name)
	}

	return v, nil
}
