package fuzzy

// Scoring holds the bonus and penalty weights used to score a Match.
//
// All weights are signed integers and any combination is a legal
// configuration, including negative or zero values; the search only ever
// sums and subtracts them. The defaults are tuned so that word-start
// matches dominate mid-word contiguous runs.
type Scoring struct {
	// BonusConsecutive is added once per additional contiguous step of an
	// uninterrupted run: the n-th character of a run contributes
	// (n-1) * BonusConsecutive.
	BonusConsecutive int `yaml:"bonus_consecutive" json:"bonus_consecutive"`

	// BonusWordStart is added when a matched character is the first
	// character of a word in the target.
	BonusWordStart int `yaml:"bonus_word_start" json:"bonus_word_start"`

	// BonusMatchCase is added when a case-insensitive search matches a
	// target character whose case equals the pattern character's case
	// exactly. It is never applied under case-sensitive search, where a
	// character match is always a case match.
	BonusMatchCase int `yaml:"bonus_match_case" json:"bonus_match_case"`

	// BonusCoverage scales a one-time bonus by matched-length over
	// target-length, rewarding alignments that cover a larger fraction of
	// the target. Applied once on the final score as
	// BonusCoverage * matchedCount / targetLength (integer division), after
	// the best alignment has been chosen. Zero disables it.
	BonusCoverage int `yaml:"bonus_coverage" json:"bonus_coverage"`

	// PenaltyDistance is subtracted per skipped target character between
	// two consecutive matched pattern characters.
	PenaltyDistance int `yaml:"penalty_distance" json:"penalty_distance"`
}

// DefaultScoring returns the default weights. Word-start matches dominate
// mid-word contiguous runs under these values.
func DefaultScoring() Scoring {
	return Scoring{
		BonusConsecutive: 8,
		BonusWordStart:   72,
		BonusMatchCase:   8,
		BonusCoverage:    0,
		PenaltyDistance:  4,
	}
}

// EmphasizeWordStarts returns weights that favor matching word starts.
// This is also the default configuration.
func EmphasizeWordStarts() Scoring {
	return DefaultScoring()
}

// EmphasizeDistance returns weights that favor short distances between
// matched characters over word starts.
func EmphasizeDistance() Scoring {
	return Scoring{
		BonusConsecutive: 12,
		BonusWordStart:   24,
		BonusMatchCase:   8,
		BonusCoverage:    0,
		PenaltyDistance:  8,
	}
}

// EmphasizeCoverage returns the default weights plus a coverage factor, so
// that alignments spanning a larger fraction of the target score higher
// when results are compared across targets of different lengths.
func EmphasizeCoverage() Scoring {
	s := DefaultScoring()
	s.BonusCoverage = 64
	return s
}
