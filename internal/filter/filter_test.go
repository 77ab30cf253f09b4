package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haystacksearch/needle/pkg/fuzzy"
)

func testCandidates() []string {
	return []string{
		"cmd/needle/main.go",
		"internal/filter/filter.go",
		"pkg/fuzzy/search.go",
		"README.md",
		"SoccerCartoonController",
	}
}

func TestRank_DropsNonMatches(t *testing.T) {
	f := New(testCandidates(), DefaultOptions())

	ranked, err := f.Rank(context.Background(), "fuzzy")
	require.NoError(t, err)

	for _, r := range ranked {
		require.NotNil(t, r.Match)
		assert.Contains(t, r.Text, "f") // every match at least contains the first pattern char
	}
	// "README.md" has no 'z'; it must not appear.
	for _, r := range ranked {
		assert.NotEqual(t, "README.md", r.Text)
	}
}

func TestRank_OrderedByScoreThenInput(t *testing.T) {
	f := New(testCandidates(), DefaultOptions())

	ranked, err := f.Rank(context.Background(), "scc")
	require.NoError(t, err)
	require.NotEmpty(t, ranked)

	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if prev.Match.Score() == cur.Match.Score() {
			assert.Less(t, prev.Index, cur.Index)
		} else {
			assert.Greater(t, prev.Match.Score(), cur.Match.Score())
		}
	}
}

func TestRank_EmptyPatternPreservesInputOrder(t *testing.T) {
	candidates := testCandidates()
	f := New(candidates, DefaultOptions())

	ranked, err := f.Rank(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, ranked, len(candidates))

	for i, r := range ranked {
		assert.Equal(t, candidates[i], r.Text)
		assert.Zero(t, r.Match.Score())
	}
}

func TestRank_Deterministic(t *testing.T) {
	// Caching disabled so every call recomputes the parallel fan-out.
	opts := DefaultOptions()
	opts.CacheSize = -1
	f := New(testCandidates(), opts)

	first, err := f.Rank(context.Background(), "neel")
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		ranked, err := f.Rank(context.Background(), "neel")
		require.NoError(t, err)
		assert.Equal(t, first, ranked)
	}
}

func TestRank_CachedResultReused(t *testing.T) {
	f := New(testCandidates(), DefaultOptions())

	first, err := f.Rank(context.Background(), "go")
	require.NoError(t, err)

	second, err := f.Rank(context.Background(), "go")
	require.NoError(t, err)

	// Same backing slice: served from cache.
	assert.Equal(t, first, second)
	if len(first) > 0 {
		assert.Equal(t, &first[0], &second[0])
	}

	f.Reset()
	third, err := f.Rank(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestRank_CanceledContext(t *testing.T) {
	f := New(testCandidates(), DefaultOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Rank(ctx, "go")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRank_CaseSensitiveOption(t *testing.T) {
	opts := DefaultOptions()
	opts.CaseSensitive = true
	f := New([]string{"SoccerCartoonController"}, opts)

	ranked, err := f.Rank(context.Background(), "scc")
	require.NoError(t, err)
	assert.Empty(t, ranked)

	ranked, err = f.Rank(context.Background(), "SCC")
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, []int{0, 6, 13}, ranked[0].Match.MatchedIndices())
}

func TestRank_CustomScoring(t *testing.T) {
	opts := DefaultOptions()
	opts.Scoring = fuzzy.EmphasizeDistance()
	f := New(testCandidates(), opts)

	ranked, err := f.Rank(context.Background(), "main")
	require.NoError(t, err)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "cmd/needle/main.go", ranked[0].Text)
}
