// Package fuzzy computes a fuzzy-matching score and optimal alignment
// between a short user-typed pattern and a longer candidate string. It is
// the scoring core behind "type a few letters, find the file/command"
// interactive filtering: given a pattern and a target, it finds the
// subsequence alignment of the pattern's characters inside the target that
// maximizes a configurable score, and reports both the score and the
// matched positions so callers can rank candidates and highlight matches.
//
// The package is a pure, synchronous library: one call, one pattern, one
// target, no shared state. Ranking across many candidates is the caller's
// job; each call is self-contained and safe to run on separate goroutines.
package fuzzy
