package fuzzy

// Match is the outcome of a successful search: the total score and the
// target positions where each pattern character matched.
//
// The score is not clamped to any range and can be negative. Matches for
// the same pattern can be compared by score to rank targets.
type Match struct {
	score   int
	indices []int
}

// Span is one maximal run of consecutive matched positions in the target:
// the positions Start, Start+1, ..., Start+Len-1 were all matched.
type Span struct {
	Start int `json:"start"`
	Len   int `json:"len"`
}

// Score returns the total score of this match.
func (m *Match) Score() int {
	return m.score
}

// MatchedIndices returns the matched target positions as rune indices, one
// per pattern character, in strictly increasing order. The returned slice
// is owned by the Match and must not be modified.
func (m *Match) MatchedIndices() []int {
	return m.indices
}

// ContinuousMatches groups the matched positions into maximal runs of
// consecutive indices, in order. An empty match yields no runs.
func (m *Match) ContinuousMatches() []Span {
	var spans []Span

	current := Span{}
	last := -2 // never adjacent to index 0

	for _, idx := range m.indices {
		if idx == last+1 {
			current.Len++
		} else {
			if current.Len > 0 {
				spans = append(spans, current)
			}
			current = Span{Start: idx, Len: 1}
		}
		last = idx
	}

	if current.Len > 0 {
		spans = append(spans, current)
	}

	return spans
}
