package fuzzy

import "unicode"

// queryChar is one pattern character carrying both its original and
// lowercased form, so case-insensitive search can still detect exact-case
// matches for BonusMatchCase.
type queryChar struct {
	original rune
	lower    rune
}

// processPattern strips all whitespace from the pattern and pairs each
// remaining rune with its lowercase form. Multi-word queries are intended
// to match across word boundaries without requiring literal spaces in the
// target, so whitespace never participates in matching.
func processPattern(pattern string) []queryChar {
	query := make([]queryChar, 0, len(pattern))
	for _, r := range pattern {
		if unicode.IsSpace(r) {
			continue
		}
		query = append(query, queryChar{original: r, lower: unicode.ToLower(r)})
	}
	return query
}

// occurrence is one position in the target where some queried rune occurs.
type occurrence struct {
	// targetIdx is the rune index into the target.
	targetIdx int
	// isStart reports whether the target position begins a word.
	isStart bool
	// char is the original-case target rune at this position.
	char rune
}

// occurrenceTable maps each queried rune (lowercased under case-insensitive
// search) to its ordered occurrences in the target.
type occurrenceTable map[rune][]occurrence

// buildOccurrences scans the target once and records, for every rune the
// query asks about, the positions where it occurs along with the word-start
// flag for each position.
//
// A position is a word start when it begins the string, follows a separator
// rune, or is an uppercase rune preceded by a lowercase one. Separator
// runes themselves never start a word.
func buildOccurrences(query []queryChar, target []rune, caseInsensitive bool) occurrenceTable {
	queried := make(map[rune]struct{}, len(query))
	for _, qc := range query {
		if caseInsensitive {
			queried[qc.lower] = struct{}{}
		} else {
			queried[qc.original] = struct{}{}
		}
	}

	table := make(occurrenceTable, len(queried))

	var prev rune
	for i, c := range target {
		key := c
		if caseInsensitive {
			key = unicode.ToLower(c)
		}

		if _, ok := queried[key]; ok {
			table[key] = append(table[key], occurrence{
				targetIdx: i,
				isStart:   isWordStart(i, prev, c),
				char:      c,
			})
		}

		prev = c
	}

	return table
}

// isWordStart reports whether the rune c at position i begins a word, given
// the preceding rune.
func isWordStart(i int, prev, c rune) bool {
	if isWordSeparator(c) {
		return false
	}
	if i == 0 || isWordSeparator(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(c)
}

// isWordSeparator reports whether a rune separates words. Anything that is
// not a letter or digit counts: whitespace, punctuation, path separators.
func isWordSeparator(c rune) bool {
	return !unicode.IsLetter(c) && !unicode.IsDigit(c)
}
