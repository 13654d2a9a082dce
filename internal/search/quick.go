package search

import (
	"sort"
	"strings"

	"github.com/kwhalen/repbook/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// QuickMatch is one quick-search hit with highlight metadata
type QuickMatch struct {
	Exercise       domain.Exercise
	MatchedIndexes []int // Byte offsets into the name that matched
	Score          int   // Higher is better
}

// quickIndex implements sahilm/fuzzy.Source for zero-allocation matching
type quickIndex struct {
	exercises  []domain.Exercise
	lowerNames []string
}

// String returns the lowercase name at index i (implements fuzzy.Source)
func (idx *quickIndex) String(i int) string { return idx.lowerNames[i] }

// Len returns the number of indexed exercises (implements fuzzy.Source)
func (idx *quickIndex) Len() int { return len(idx.exercises) }

// QuickIndex holds the fetched exercises for fuzzy quick-search. It is
// rebuilt on every list re-fetch; there is no incremental maintenance.
type QuickIndex struct {
	idx quickIndex
}

// NewQuickIndex builds an index over the given exercises
func NewQuickIndex(exercises []domain.Exercise) *QuickIndex {
	lower := make([]string, len(exercises))
	for i, ex := range exercises {
		lower[i] = strings.ToLower(ex.Name)
	}
	return &QuickIndex{idx: quickIndex{exercises: exercises, lowerNames: lower}}
}

// Find returns fuzzy matches for the query, best first
func (q *QuickIndex) Find(query string) []QuickMatch {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	matches := sahilm.FindFrom(query, &q.idx)
	if len(matches) == 0 {
		return q.rankFallback(query)
	}

	results := make([]QuickMatch, len(matches))
	for i, m := range matches {
		results[i] = QuickMatch{
			Exercise:       q.idx.exercises[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// rankFallback matches the query against diacritic-normalized names, so
// "uber" still finds "Überkopfdrücken" when the primary matcher comes up
// empty. Fallback hits carry no highlight offsets.
func (q *QuickIndex) rankFallback(query string) []QuickMatch {
	names := make([]string, len(q.idx.exercises))
	for i, ex := range q.idx.exercises {
		names[i] = ex.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	out := make([]QuickMatch, len(ranks))
	for i, r := range ranks {
		out[i] = QuickMatch{
			Exercise: q.idx.exercises[r.OriginalIndex],
			Score:    -r.Distance,
		}
	}
	return out
}
