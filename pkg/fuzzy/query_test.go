package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPattern_StripsWhitespace(t *testing.T) {
	assert.Equal(t,
		[]queryChar{{'a', 'a'}, {'b', 'b'}, {'c', 'c'}},
		processPattern("a b\tc"))

	assert.Equal(t,
		[]queryChar{{'A', 'a'}, {'B', 'b'}, {'C', 'c'}},
		processPattern("ABC"))

	assert.Empty(t, processPattern("  \t\n "))
}

func TestIsWordSeparator(t *testing.T) {
	seps := []rune{'/', '\\', '|', '_', '-', ' ', '\t', ':', '.', ',', '~', '>', '<'}
	for _, s := range seps {
		assert.True(t, isWordSeparator(s), "expected %q to separate words", s)
	}

	for _, c := range []rune{'a', 'Z', '0', '9', 'é'} {
		assert.False(t, isWordSeparator(c), "expected %q not to separate words", c)
	}
}

func TestIsWordStart(t *testing.T) {
	tests := []struct {
		name string
		i    int
		prev rune
		c    rune
		want bool
	}{
		{"string start", 0, 0, 's', true},
		{"after space", 5, ' ', 't', true},
		{"after path separator", 4, '/', 'm', true},
		{"after underscore", 3, '_', 'x', true},
		{"lower to upper transition", 6, 'r', 'C', true},
		{"mid lowercase word", 2, 'o', 'c', false},
		{"upper to upper", 2, 'T', 'M', false},
		{"upper to lower", 1, 'S', 'o', false},
		{"separator is never a start", 0, 0, '/', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isWordStart(tt.i, tt.prev, tt.c))
		})
	}
}

func TestBuildOccurrences_FlagsWordStarts(t *testing.T) {
	query := processPattern("scc")
	table := buildOccurrences(query, []rune("SoccerCartoonController"), true)

	require.Len(t, table, 2)

	s := table['s']
	require.Len(t, s, 1)
	assert.Equal(t, occurrence{targetIdx: 0, isStart: true, char: 'S'}, s[0])

	c := table['c']
	assert.Equal(t, []occurrence{
		{targetIdx: 2, isStart: false, char: 'c'},
		{targetIdx: 3, isStart: false, char: 'c'},
		{targetIdx: 6, isStart: true, char: 'C'},
		{targetIdx: 13, isStart: true, char: 'C'},
	}, c)
}

func TestBuildOccurrences_CaseSensitiveKeys(t *testing.T) {
	query := processPattern("SC")
	table := buildOccurrences(query, []rune("SoccerCartoon"), false)

	// Keys carry the original case: lowercase occurrences are not indexed.
	require.Len(t, table, 2)
	assert.Len(t, table['S'], 1)
	assert.Len(t, table['C'], 1)
	assert.Empty(t, table['c'])
}

func TestBuildOccurrences_SeparatorCanBeQueried(t *testing.T) {
	query := processPattern("a-b")
	table := buildOccurrences(query, []rune("a-b"), true)

	// The dash occurs and can be matched, but it is not a word start.
	dash := table['-']
	require.Len(t, dash, 1)
	assert.False(t, dash[0].isStart)
}
