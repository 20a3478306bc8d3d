package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metabatch/internal/diagnostic"
)

func TestLoad(t *testing.T) {
	src := strings.Join([]string{
		"_id = $1",
		"title = $2",
		"erc.who = $3",
		"/resource/titles/title = $2",
		"/resource/titles/title@titleType = Subtitle",
	}, "\n")

	rules, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rules, 5)

	assert.Equal(t, Rule{Destination: "_id", Expression: "$1"}, rules[0])
	assert.Equal(t, Rule{Destination: "erc.who", Expression: "$3"}, rules[2])
	assert.False(t, rules[1].IsDocumentPath())
	assert.True(t, rules[3].IsDocumentPath())
	assert.Equal(t, "/resource/titles/title@titleType", rules[4].Destination)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no equals", "title $1"},
		{"two equals", "title = a = b"},
		{"blank line", "title = $1\n\n_id = $2"},
		{"bad element name", "bad name = $1"},
		{"path without resource root", "/titles/title = $1"},
		{"path with bare resource", "/resource = $1"},
		{"path with empty segment", "/resource//title = $1"},
		{"attribute on flat key", "title@type = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, diagnostic.IsKind(err, diagnostic.KindConfig))
		})
	}
}

func TestLoadAllOrNothing(t *testing.T) {
	// The bad line is last; nothing must be returned.
	rules, err := Load(strings.NewReader("title = $1\nbroken"))
	require.Error(t, err)
	assert.Nil(t, rules)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFlatKeys(t *testing.T) {
	rules := []Rule{
		{Destination: "_id", Expression: "$1"},
		{Destination: "/resource/titles/title", Expression: "$2"},
		{Destination: "title", Expression: "$2"},
	}

	assert.Equal(t, []string{"_id", "title"}, FlatKeys(rules))
}

func TestRequireID(t *testing.T) {
	withID := []Rule{{Destination: "_id", Expression: "$1"}}
	assert.NoError(t, RequireID(withID))

	withoutID := []Rule{
		{Destination: "title", Expression: "$1"},
		{Destination: "/resource/identifier", Expression: "$2"},
	}
	err := RequireID(withoutID)
	require.Error(t, err)
	assert.True(t, diagnostic.IsKind(err, diagnostic.KindConfig))
}
