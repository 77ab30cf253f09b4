package fuzzy

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMatch_WordStartsBeatMidWordRuns(t *testing.T) {
	// Given: a target with both mid-word "cc" and capitalized word starts
	m := BestMatch("scc", "SoccerCartoonController")

	// Then: the capitals S, C, C win over the "cc" inside "Soccer"
	require.NotNil(t, m)
	assert.Equal(t, []int{0, 6, 13}, m.MatchedIndices())
	assert.Equal(t, 172, m.Score())
}

func TestBestMatch_WordStartScoreExceedsMidWordScore(t *testing.T) {
	scoring := DefaultScoring()
	target := "SoccerCartoonController"

	best := ComputeBestMatch("scc", target, scoring, false)
	require.NotNil(t, best)

	// The mid-word alignment S-c-c at indices 0,2,3 scores:
	// word start for S, a distance-1 gap, then one consecutive step.
	midWord := scoring.BonusWordStart -
		1*scoring.PenaltyDistance +
		1*scoring.BonusConsecutive
	assert.Equal(t, 76, midWord)
	assert.Greater(t, best.Score(), midWord)
}

func TestBestMatch_CaseBonusOnlyWhenInsensitive(t *testing.T) {
	target := "SoccerCartoonController"

	insensitive := NewSearch("SCC", target).CaseInsensitive().BestMatch()
	sensitive := NewSearch("SCC", target).CaseSensitive().BestMatch()

	require.NotNil(t, insensitive)
	require.NotNil(t, sensitive)
	assert.Equal(t, []int{0, 6, 13}, insensitive.MatchedIndices())
	assert.Equal(t, []int{0, 6, 13}, sensitive.MatchedIndices())

	// Insensitive search earns BonusMatchCase at each of the three capitals.
	assert.Equal(t, sensitive.Score()+3*DefaultScoring().BonusMatchCase, insensitive.Score())
}

func TestBestMatch_CaseSensitiveRejectsWrongCase(t *testing.T) {
	m := NewSearch("scc", "SoccerCartoonController").CaseSensitive().BestMatch()
	// No lowercase 's' occurs anywhere in the target.
	assert.Nil(t, m)
}

func TestBestMatch_WhitespaceStrippedFromPattern(t *testing.T) {
	target := "some search thing"

	withSpace := BestMatch("some thing", target)
	withoutSpace := BestMatch("something", target)

	require.NotNil(t, withSpace)
	require.NotNil(t, withoutSpace)
	assert.Equal(t, withoutSpace.MatchedIndices(), withSpace.MatchedIndices())
	assert.Equal(t, withoutSpace.Score(), withSpace.Score())
}

func TestBestMatch_SomeSearchThing(t *testing.T) {
	m := BestMatch("something", "some search thing")

	require.NotNil(t, m)
	assert.Equal(t, []int{0, 1, 2, 3, 12, 13, 14, 15, 16}, m.MatchedIndices())
	assert.Equal(t, []Span{{Start: 0, Len: 4}, {Start: 12, Len: 5}}, m.ContinuousMatches())
}

func TestBestMatch_NoMatchWhenNotASubsequence(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		target  string
	}{
		{"missing character", "xyz", "abc"},
		{"out of order", "ba", "ab"},
		{"too many repeats", "aaa", "aa"},
		{"empty target", "a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, BestMatch(tt.pattern, tt.target))
		})
	}
}

func TestBestMatch_EmptyPatternMatchesAnything(t *testing.T) {
	for _, target := range []string{"", "anything", "Some Search Thing"} {
		m := BestMatch("", target)
		require.NotNil(t, m, "target %q", target)
		assert.Zero(t, m.Score())
		assert.Empty(t, m.MatchedIndices())
		assert.Empty(t, m.ContinuousMatches())
	}

	// Whitespace-only patterns reduce to the empty pattern.
	m := BestMatch(" \t\n", "anything")
	require.NotNil(t, m)
	assert.Zero(t, m.Score())
}

func TestBestMatch_ValidAlignment(t *testing.T) {
	pairs := []struct {
		pattern string
		target  string
	}{
		{"scc", "SoccerCartoonController"},
		{"something", "some search thing"},
		{"obs", "ObservableCollection"},
		{"cgo", "cmd/generate/output.go"},
		{"aaa", "banana bandana"},
	}

	for _, p := range pairs {
		m := BestMatch(p.pattern, p.target)
		require.NotNil(t, m, "pattern %q target %q", p.pattern, p.target)

		query := processPattern(p.pattern)
		target := []rune(p.target)
		indices := m.MatchedIndices()
		require.Len(t, indices, len(query))

		prev := -1
		for i, idx := range indices {
			assert.Greater(t, idx, prev, "indices must be strictly increasing")
			require.Less(t, idx, len(target))
			assert.Equal(t, query[i].lower, unicode.ToLower(target[idx]),
				"character mismatch at pattern position %d", i)
			prev = idx
		}
	}
}

func TestBestMatch_TieBreaksToEarliestIndices(t *testing.T) {
	// Both 'a' occurrences score identically (neither is a word start).
	m := BestMatch("a", "xaya")
	require.NotNil(t, m)
	assert.Equal(t, []int{1}, m.MatchedIndices())
}

func TestBestMatch_Deterministic(t *testing.T) {
	first := BestMatch("scc", "SccsCoolController")
	require.NotNil(t, first)

	for i := 0; i < 50; i++ {
		m := BestMatch("scc", "SccsCoolController")
		require.NotNil(t, m)
		assert.Equal(t, first.Score(), m.Score())
		assert.Equal(t, first.MatchedIndices(), m.MatchedIndices())
	}
}

func TestBestMatch_CoverageBonusAppliedOnce(t *testing.T) {
	target := "SoccerCartoonController"

	plain := ComputeBestMatch("scc", target, DefaultScoring(), false)
	covered := ComputeBestMatch("scc", target, EmphasizeCoverage(), false)

	require.NotNil(t, plain)
	require.NotNil(t, covered)

	// Same alignment, score shifted by BonusCoverage * matched / targetLen.
	assert.Equal(t, plain.MatchedIndices(), covered.MatchedIndices())
	want := plain.Score() + EmphasizeCoverage().BonusCoverage*3/len([]rune(target))
	assert.Equal(t, want, covered.Score())
}

func TestBestMatch_NegativeWeightsAreLegal(t *testing.T) {
	scoring := Scoring{
		BonusConsecutive: -5,
		BonusWordStart:   -10,
		BonusMatchCase:   0,
		PenaltyDistance:  -2, // a gap reward
	}

	m := ComputeBestMatch("ab", "a man a ban", scoring, false)
	require.NotNil(t, m)
	assertOptimal(t, "ab", "a man a ban", scoring, false, m)
}

func TestBestMatch_OptimalUnderBruteForce(t *testing.T) {
	tests := []struct {
		pattern string
		target  string
	}{
		{"cc", "SocCerCar"},
		{"abc", "aabbccabc"},
		{"aaa", "aaaaaa"},
		{"ab", "a b a b a b"},
		{"sst", "Som Srch Tng"},
		{"xyz", "zyxzyxzyxzyx"},
		{"ss", "MiSsissippi"},
	}

	configs := map[string]Scoring{
		"default":  DefaultScoring(),
		"distance": EmphasizeDistance(),
		"coverage": EmphasizeCoverage(),
		"zero":     {},
	}

	for _, tt := range tests {
		for name, scoring := range configs {
			for _, caseSensitive := range []bool{false, true} {
				m := ComputeBestMatch(tt.pattern, tt.target, scoring, caseSensitive)
				if m == nil {
					// Brute force must agree there is no alignment.
					_, found := bruteForceBest(tt.pattern, tt.target, scoring, caseSensitive)
					assert.False(t, found,
						"%s/%q in %q: engine says no match, brute force disagrees", name, tt.pattern, tt.target)
					continue
				}
				assertOptimal(t, tt.pattern, tt.target, scoring, caseSensitive, m)
			}
		}
	}
}

// assertOptimal checks the engine's score against exhaustive enumeration of
// every valid strictly-increasing alignment.
func assertOptimal(t *testing.T, pattern, target string, scoring Scoring, caseSensitive bool, m *Match) {
	t.Helper()

	best, found := bruteForceBest(pattern, target, scoring, caseSensitive)
	require.True(t, found, "engine found a match brute force did not")
	assert.Equal(t, best, m.Score(),
		"pattern %q target %q caseSensitive %v", pattern, target, caseSensitive)
	assert.Equal(t, best, scoreAlignment(pattern, target, scoring, caseSensitive, m.MatchedIndices()),
		"returned indices do not reproduce the returned score")
}

// bruteForceBest enumerates all valid alignments and returns the maximal
// score. Exponential; only for small inputs.
func bruteForceBest(pattern, target string, scoring Scoring, caseSensitive bool) (int, bool) {
	query := processPattern(pattern)
	runes := []rune(target)

	best := 0
	found := false

	var walk func(qi, from int, indices []int)
	walk = func(qi, from int, indices []int) {
		if qi == len(query) {
			score := scoreAlignment(pattern, target, scoring, caseSensitive, indices)
			if !found || score > best {
				best = score
				found = true
			}
			return
		}
		want := query[qi].original
		for j := from; j < len(runes); j++ {
			c := runes[j]
			if caseSensitive {
				if c != want {
					continue
				}
			} else if unicode.ToLower(c) != query[qi].lower {
				continue
			}
			walk(qi+1, j+1, append(indices, j))
		}
	}
	walk(0, 0, nil)

	return best, found
}

// scoreAlignment recomputes the score of a fixed alignment directly from
// the scoring rules, independently of the search engine.
func scoreAlignment(pattern, target string, scoring Scoring, caseSensitive bool, indices []int) int {
	query := processPattern(pattern)
	runes := []rune(target)

	score := 0
	run := 0
	for i, j := range indices {
		if i > 0 {
			gap := j - indices[i-1] - 1
			if gap == 0 {
				run++
			} else {
				run = 0
			}
			score -= gap * scoring.PenaltyDistance
		}
		score += run * scoring.BonusConsecutive

		var prev rune
		if j > 0 {
			prev = runes[j-1]
		}
		if isWordStart(j, prev, runes[j]) {
			score += scoring.BonusWordStart
		}
		if !caseSensitive && query[i].original == runes[j] {
			score += scoring.BonusMatchCase
		}
	}

	if scoring.BonusCoverage != 0 && len(runes) > 0 {
		score += scoring.BonusCoverage * len(indices) / len(runes)
	}

	return score
}
