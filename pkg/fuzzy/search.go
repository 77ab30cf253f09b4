package fuzzy

// Search describes one fuzzy search of a pattern inside a target string.
// It is configured with chained calls and executed with BestMatch:
//
//	m := fuzzy.NewSearch("something", "Some Search Thing").
//		ScoreWith(fuzzy.EmphasizeWordStarts()).
//		CaseInsensitive().
//		BestMatch()
//
// Whitespace in the pattern is ignored.
type Search struct {
	pattern         string
	target          string
	scoring         Scoring
	caseInsensitive bool
}

// NewSearch creates a search for pattern inside target with default scoring
// and case-insensitive matching.
func NewSearch(pattern, target string) *Search {
	return &Search{
		pattern:         pattern,
		target:          target,
		scoring:         DefaultScoring(),
		caseInsensitive: true,
	}
}

// ScoreWith sets custom scoring weights.
func (s *Search) ScoreWith(scoring Scoring) *Search {
	s.scoring = scoring
	return s
}

// CaseSensitive makes pattern characters match target characters only when
// the case matches too. BonusMatchCase is not applied in this mode, since
// every character match is already a case match.
func (s *Search) CaseSensitive() *Search {
	s.caseInsensitive = false
	return s
}

// CaseInsensitive makes matching ignore case. When the case happens to
// match anyway, BonusMatchCase is added to the score.
func (s *Search) CaseInsensitive() *Search {
	s.caseInsensitive = true
	return s
}

// BestMatch finds the alignment of the pattern inside the target that
// maximizes the total score.
//
// The full pattern must match: if some pattern character has no occurrence
// in the target after the previous match, the result is nil. Nil is a
// normal outcome, not an error. An empty pattern (after whitespace removal)
// matches any target, including the empty one, with score zero and no
// matched positions.
//
// When several alignments reach the maximal score, the lexicographically
// earliest sequence of matched indices is returned, so repeated calls with
// identical inputs yield identical results.
func (s *Search) BestMatch() *Match {
	query := processPattern(s.pattern)
	if len(query) == 0 {
		return &Match{}
	}

	target := []rune(s.target)
	if len(target) == 0 {
		return nil
	}

	eng := &searcher{
		query:           query,
		scoring:         s.scoring,
		caseInsensitive: s.caseInsensitive,
		occurrences:     buildOccurrences(query, target, s.caseInsensitive),
		memo:            make(map[memoKey]*Match),
	}

	m := eng.bestMatch()
	if m == nil {
		return nil
	}

	if s.scoring.BonusCoverage != 0 {
		// Constant across alignments of one pattern/target pair, so it is
		// applied once on the winner rather than inside the search.
		m.score += s.scoring.BonusCoverage * len(m.indices) / len(target)
	}

	return m
}

// ComputeBestMatch runs a single search with explicit configuration. It is
// the functional form of NewSearch(...).ScoreWith(...).BestMatch().
func ComputeBestMatch(pattern, target string, scoring Scoring, caseSensitive bool) *Match {
	s := NewSearch(pattern, target).ScoreWith(scoring)
	if caseSensitive {
		s.CaseSensitive()
	}
	return s.BestMatch()
}

// BestMatch runs a case-insensitive search with default scoring.
func BestMatch(pattern, target string) *Match {
	return NewSearch(pattern, target).BestMatch()
}

// memoKey identifies one search subproblem: which pattern position is being
// placed, at which target position, with how long an uninterrupted run
// leading into it. The consecutive-run length is part of the key because it
// feeds the score of the placement itself.
type memoKey struct {
	queryIdx    int
	targetIdx   int
	consecutive int
}

// searcher holds the state of one BestMatch invocation. It is owned by that
// call and discarded on return; the memo table is keyed by positions within
// one specific target and must never be reused.
type searcher struct {
	query           []queryChar
	scoring         Scoring
	caseInsensitive bool
	occurrences     occurrenceTable
	memo            map[memoKey]*Match
}

// queriedRune returns the form of a pattern character that occurrence table
// keys use under the active case rule.
func (e *searcher) queriedRune(qc queryChar) rune {
	if e.caseInsensitive {
		return qc.lower
	}
	return qc.original
}

// caseBonus returns BonusMatchCase when a case-insensitive search matched
// the exact original case.
func (e *searcher) caseBonus(queryIdx int, occ occurrence) int {
	if e.caseInsensitive && e.query[queryIdx].original == occ.char {
		return e.scoring.BonusMatchCase
	}
	return 0
}

// bestMatch tries every occurrence of the first pattern character as the
// start of an alignment and keeps the best completion.
func (e *searcher) bestMatch() *Match {
	first, ok := e.occurrences[e.queriedRune(e.query[0])]
	if !ok {
		return nil
	}

	var best *Match
	for _, occ := range first {
		if m := e.matchFrom(1, occ, 0); m != nil && (best == nil || m.score > best.score) {
			best = m
		}
	}
	return best
}

// matchFrom scores the placement of the pattern character at queryIdx-1 on
// occ, then extends it with the best-scoring completion of the remaining
// pattern. consecutive is the length of the uninterrupted run leading into
// occ. Returns nil when no completion exists.
//
// The search branches at every later occurrence of the next pattern
// character; memoization on (queryIdx, targetIdx, consecutive) keeps the
// whole exploration polynomial instead of exponential in repeated
// characters. Occurrences are scanned in increasing target order and only
// strictly better completions replace the current best, which makes the
// result the lexicographically earliest of the maximal alignments.
func (e *searcher) matchFrom(queryIdx int, occ occurrence, consecutive int) *Match {
	key := memoKey{queryIdx: queryIdx, targetIdx: occ.targetIdx, consecutive: consecutive}
	if cached, ok := e.memo[key]; ok {
		return cached
	}

	score := consecutive*e.scoring.BonusConsecutive + e.caseBonus(queryIdx-1, occ)
	if occ.isStart {
		score += e.scoring.BonusWordStart
	}

	// All pattern characters placed.
	if queryIdx == len(e.query) {
		m := &Match{score: score, indices: []int{occ.targetIdx}}
		e.memo[key] = m
		return m
	}

	var (
		best      *Match
		bestTotal int
	)
	for _, next := range e.occurrences[e.queriedRune(e.query[queryIdx])] {
		if next.targetIdx <= occ.targetIdx {
			continue
		}

		gap := next.targetIdx - occ.targetIdx - 1
		run := 0
		if gap == 0 {
			run = consecutive + 1
		}

		sub := e.matchFrom(queryIdx+1, next, run)
		if sub == nil {
			continue
		}

		total := sub.score - gap*e.scoring.PenaltyDistance
		if best == nil || total > bestTotal {
			best = sub
			bestTotal = total
		}
	}

	if best == nil {
		e.memo[key] = nil
		return nil
	}

	indices := make([]int, 0, len(best.indices)+1)
	indices = append(indices, occ.targetIdx)
	indices = append(indices, best.indices...)

	m := &Match{score: score + bestTotal, indices: indices}
	e.memo[key] = m
	return m
}
