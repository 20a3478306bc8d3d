package anvl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	text := Encode(map[string]string{
		"b": "2",
		"a": "1",
		"c": "3",
	})

	// Deterministic key order, independent of insertion order.
	assert.Equal(t, "a: 1\nb: 2\nc: 3\n", text)
}

func TestEncodeEscaping(t *testing.T) {
	tests := []struct {
		name     string
		record   map[string]string
		expected string
	}{
		{
			name:     "colon escaped in key only",
			record:   map[string]string{"a:b": "c:d"},
			expected: "a%3Ab: c:d\n",
		},
		{
			name:     "newline escaped everywhere",
			record:   map[string]string{"a": "c\nd"},
			expected: "a: c%0Ad\n",
		},
		{
			name:     "percent escaped everywhere",
			record:   map[string]string{"100%": "50%"},
			expected: "100%25: 50%25\n",
		},
		{
			name:     "carriage return",
			record:   map[string]string{"k": "a\r\nb"},
			expected: "k: a%0D%0Ab\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.record))
		})
	}
}

func TestEncodeEscapedKeySubstring(t *testing.T) {
	assert.Contains(t, Encode(map[string]string{"a:b": "c\nd"}), "a%3Ab")
}

func TestRoundTrip(t *testing.T) {
	records := []map[string]string{
		{"a": "b"},
		{"a:b": "c\nd", "x%y": "p:q\r\nr", "k\nl": "v%v"},
		{"erc.who": "Lovelace, Ada", "_target": "https://example.org/?q=1"},
	}

	for _, rec := range records {
		assert.Equal(t, rec, Decode(Encode(rec)))
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]string
	}{
		{
			name:     "split on first colon",
			text:     "a: b:c\n",
			expected: map[string]string{"a": "b:c"},
		},
		{
			name:     "lines without colon ignored",
			text:     "no colon here\na: 1\n",
			expected: map[string]string{"a": "1"},
		},
		{
			name:     "empty key dropped",
			text:     ": value\n",
			expected: map[string]string{},
		},
		{
			name:     "empty value dropped",
			text:     "key:\nkey2:   \n",
			expected: map[string]string{},
		},
		{
			name:     "both sides trimmed after decoding",
			text:     "  a  :  b  \n",
			expected: map[string]string{"a": "b"},
		},
		{
			name:     "malformed escape passes through",
			text:     "a: b%zz\n",
			expected: map[string]string{"a": "b%zz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.text))
		})
	}
}

func TestDecodeLowercaseHex(t *testing.T) {
	// Decoding accepts lowercase escapes even though Encode emits
	// uppercase.
	assert.Equal(t, map[string]string{"a:b": "c"}, Decode("a%3ab: c\n"))
}

func TestEncodeEmptyRecord(t *testing.T) {
	require.Equal(t, "", Encode(nil))
	assert.Empty(t, Decode(""))
}

func TestEncodeUppercaseHex(t *testing.T) {
	text := Encode(map[string]string{"k": "\n"})
	assert.True(t, strings.Contains(text, "%0A") && !strings.Contains(text, "%0a"))
}
