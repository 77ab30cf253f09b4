// Package filter ranks a fixed set of candidate strings against user-typed
// patterns. The matching core scores one pattern against one target; this
// package is the caller-side layer that fans out over many candidates,
// sorts the results, and caches ranked lists per pattern for interactive
// re-filtering.
package filter

import (
	"context"
	"runtime"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/haystacksearch/needle/pkg/fuzzy"
)

// DefaultCacheSize is the default number of ranked pattern results to keep.
// Interactive filtering re-queries the same prefixes constantly while the
// user types and backspaces.
const DefaultCacheSize = 256

// Ranked pairs one candidate with its match against the current pattern.
type Ranked struct {
	// Text is the candidate string.
	Text string
	// Index is the candidate's position in the original input.
	Index int
	// Match holds the score and matched positions. Never nil: candidates
	// that do not match are dropped from the ranking entirely.
	Match *fuzzy.Match
}

// Options configures a Filter.
type Options struct {
	// Scoring are the weights passed to every match call.
	Scoring fuzzy.Scoring

	// CaseSensitive selects the match case rule.
	CaseSensitive bool

	// Workers bounds the parallel fan-out over candidates.
	// Zero means runtime.NumCPU().
	Workers int

	// CacheSize is the maximum number of cached pattern rankings.
	// Zero means DefaultCacheSize; negative disables caching.
	CacheSize int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Scoring:       fuzzy.DefaultScoring(),
		CaseSensitive: false,
		Workers:       0,
		CacheSize:     DefaultCacheSize,
	}
}

// Filter ranks a fixed candidate set against patterns. Safe for sequential
// reuse across patterns; the candidate set is immutable after New.
type Filter struct {
	candidates []string
	opts       Options
	cache      *lru.Cache[string, []Ranked]
}

// New creates a Filter over the given candidates.
func New(candidates []string, opts Options) *Filter {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	var cache *lru.Cache[string, []Ranked]
	if opts.CacheSize >= 0 {
		size := opts.CacheSize
		if size == 0 {
			size = DefaultCacheSize
		}
		cache, _ = lru.New[string, []Ranked](size)
	}

	return &Filter{
		candidates: candidates,
		opts:       opts,
		cache:      cache,
	}
}

// Rank matches the pattern against every candidate in parallel and returns
// the matching candidates ordered by score descending, ties broken by input
// position. Candidates the pattern cannot align with are dropped. An empty
// pattern matches everything with score zero, preserving input order.
//
// The returned slice is shared with the cache and must not be modified.
func (f *Filter) Rank(ctx context.Context, pattern string) ([]Ranked, error) {
	if f.cache != nil {
		if cached, ok := f.cache.Get(pattern); ok {
			return cached, nil
		}
	}

	matches := make([]*fuzzy.Match, len(f.candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.opts.Workers)

	for i, text := range f.candidates {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches[i] = fuzzy.ComputeBestMatch(pattern, text, f.opts.Scoring, f.opts.CaseSensitive)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]Ranked, 0, len(f.candidates))
	for i, m := range matches {
		if m == nil {
			continue
		}
		ranked = append(ranked, Ranked{Text: f.candidates[i], Index: i, Match: m})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Match.Score() != ranked[j].Match.Score() {
			return ranked[i].Match.Score() > ranked[j].Match.Score()
		}
		return ranked[i].Index < ranked[j].Index
	})

	if f.cache != nil {
		f.cache.Add(pattern, ranked)
	}

	return ranked, nil
}

// Reset clears the cached rankings. Callers that mutate their candidate set
// should build a new Filter instead; Reset exists for tests and for memory
// pressure.
func (f *Filter) Reset() {
	if f.cache != nil {
		f.cache.Purge()
	}
}

// Len returns the number of candidates.
func (f *Filter) Len() int {
	return len(f.candidates)
}
