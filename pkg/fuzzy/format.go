package fuzzy

import "strings"

// FormatSimple renders the target with every continuous run of matched
// characters wrapped in the given prefix and suffix markers. Unmatched
// regions pass through unchanged. A nil match returns the target as is.
//
//	m := fuzzy.BestMatch("something", "some search thing")
//	fuzzy.FormatSimple(m, "some search thing", "<span>", "</span>")
//	// "<span>some</span> search <span>thing</span>"
func FormatSimple(m *Match, target, prefix, suffix string) string {
	if m == nil {
		return target
	}

	runes := []rune(target)

	var b strings.Builder
	last := 0
	for _, span := range m.ContinuousMatches() {
		b.WriteString(string(runes[last:span.Start]))
		b.WriteString(prefix)
		b.WriteString(string(runes[span.Start : span.Start+span.Len]))
		b.WriteString(suffix)
		last = span.Start + span.Len
	}
	b.WriteString(string(runes[last:]))

	return b.String()
}
