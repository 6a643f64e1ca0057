package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"bare object",
			`{"days": []}`,
			`{"days": []}`,
		},
		{
			"markdown fenced",
			"```json\n{\"days\": []}\n```",
			`{"days": []}`,
		},
		{
			"leading prose",
			`Here is your itinerary: {"days": []}`,
			`{"days": []}`,
		},
		{
			"trailing prose",
			`{"days": []} I hope this helps!`,
			`{"days": []}`,
		},
		{
			"braces inside string literals",
			`{"title": "use {curly} braces"}`,
			`{"title": "use {curly} braces"}`,
		},
		{
			"escaped quotes inside strings",
			`{"title": "she said \"go {now}\""}`,
			`{"title": "she said \"go {now}\""}`,
		},
		{
			"top level array",
			"```\n[1, 2, 3]\n```",
			`[1, 2, 3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.input))
		})
	}
}

func TestFindMatchingDelim(t *testing.T) {
	input := `{"a": {"b": 1}} trailing`
	end := findMatchingDelim(input, 0, '{', '}')
	require.NotEqual(t, -1, end)
	assert.Equal(t, `{"a": {"b": 1}}`, input[:end+1])

	assert.Equal(t, -1, findMatchingDelim(`{"unclosed": 1`, 0, '{', '}'))
	assert.Equal(t, -1, findMatchingDelim("no brace", 0, '{', '}'))
}

func TestNewGenerationClientUnknownProvider(t *testing.T) {
	_, err := NewGenerationClient("mistral", "key", "model", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported generation provider")
}
