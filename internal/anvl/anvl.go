// Package anvl implements the line-oriented "escapedKey: escapedValue"
// text encoding used to transmit flat metadata records.
//
// Escaping replaces "%", carriage return, and line feed with uppercase
// percent escapes everywhere, and additionally escapes ":" in keys.
// The escaping is total over its input alphabet, so encoding cannot
// fail; Decode is the exact inverse of Encode for any record without
// empty keys or values.
package anvl

import (
	"fmt"
	"sort"
	"strings"
)

// Encode renders record as ANVL text. Entries are sorted by key so the
// output is deterministic regardless of insertion order.
func Encode(record map[string]string) string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder

	for _, k := range keys {
		b.WriteString(escape(k, true))
		b.WriteString(": ")
		b.WriteString(escape(record[k], false))
		b.WriteByte('\n')
	}

	return b.String()
}

// Decode parses ANVL text back into a record. Each line splits on the
// first ":"; both sides are percent-decoded and trimmed. Lines without
// a ":" are ignored; entries whose decoded key or value is empty are
// dropped.
func Decode(text string) map[string]string {
	record := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		key := strings.TrimSpace(unescape(k))
		value := strings.TrimSpace(unescape(v))

		if key == "" || value == "" {
			continue
		}

		record[key] = value
	}

	return record
}

// escape percent-escapes "%", CR, and LF, plus ":" when colonToo is
// set (keys only).
func escape(s string, colonToo bool) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' || c == '\r' || c == '\n' || (colonToo && c == ':') {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// unescape decodes %XX sequences; malformed sequences pass through
// literally, keeping decoding total.
func unescape(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(hexVal(s[i+1])<<4 | hexVal(s[i+2]))
			i += 2

			continue
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
