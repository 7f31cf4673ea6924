package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilarStrings(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		candidates []string
		max        int
		expected   []string
	}{
		{
			name:       "typo",
			target:     "nmae",
			candidates: []string{"name", "email", "age"},
			max:        3,
			expected:   []string{"name"},
		},
		{
			name:       "closest first",
			target:     "user",
			candidates: []string{"users", "user_id", "used"},
			max:        3,
			expected:   []string{"users", "used"},
		},
		{
			name:       "case insensitive",
			target:     "NAME",
			candidates: []string{"name"},
			max:        1,
			expected:   []string{"name"},
		},
		{
			name:       "limit respected",
			target:     "ab",
			candidates: []string{"aa", "ab", "ac"},
			max:        2,
			expected:   []string{"ab", "aa"},
		},
		{
			name:       "nothing close",
			target:     "greeting",
			candidates: []string{"x"},
			max:        3,
			expected:   []string{},
		},
		{
			name:       "no candidates",
			target:     "x",
			candidates: nil,
			max:        3,
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindSimilarStrings(tt.target, tt.candidates, tt.max))
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("same", "same"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 3, levenshteinDistance("abc", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestFormatSuggestions(t *testing.T) {
	assert.Empty(t, FormatSuggestions(nil))
	assert.Equal(t, "did you mean 'name'?", FormatSuggestions([]string{"name"}))
	assert.Equal(t, "did you mean 'a', 'b' or 'c'?", FormatSuggestions([]string{"a", "b", "c"}))
}
