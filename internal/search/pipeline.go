// Package search holds the local list projections: the pure
// filter/restrict/sort pipeline applied on every render, and the fuzzy
// quick-search index for the dashboard overlay.
package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kwhalen/repbook/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects the single-key comparator for the list views
type SortField int

const (
	SortDifficulty SortField = iota
	SortName
	SortDescription
	SortFavorites
	SortSaves
)

var sortFieldNames = map[SortField]string{
	SortDifficulty:  "difficulty",
	SortName:        "name",
	SortDescription: "description",
	SortFavorites:   "favorites",
	SortSaves:       "saves",
}

// String returns the sort field's config/display name
func (f SortField) String() string {
	if name, ok := sortFieldNames[f]; ok {
		return name
	}
	return "difficulty"
}

// ParseSortField maps a config value to a sort field, defaulting to difficulty
func ParseSortField(name string) SortField {
	for field, n := range sortFieldNames {
		if n == strings.ToLower(name) {
			return field
		}
	}
	return SortDifficulty
}

// Controls are the user-adjustable projection settings
type Controls struct {
	Query         string    // Case-insensitive substring filter
	FavoritesOnly bool      // Restrict to records the viewer favorited
	SortBy        SortField // Single ascending sort key
}

// Text comparisons are locale-aware, matching how the server's web clients
// order names. The collator is not safe for concurrent use, so the pipeline
// is called from the UI loop only.
var textCollator = collate.New(language.Und, collate.Loose)

// Apply runs the fixed filter → restrict → sort pipeline and returns a new
// slice. The input is never mutated and the sort is stable, so equal keys
// keep their fetched order.
func Apply(exercises []domain.Exercise, controls Controls) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(exercises))

	query := strings.ToLower(strings.TrimSpace(controls.Query))
	for _, ex := range exercises {
		if query != "" && !matchesQuery(ex, query) {
			continue
		}
		if controls.FavoritesOnly && !ex.HasFavorited {
			continue
		}
		out = append(out, ex)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], controls.SortBy)
	})

	return out
}

// matchesQuery reports whether the lowercased query is a substring of the
// name, description, or any stringified numeric field
func matchesQuery(ex domain.Exercise, query string) bool {
	return strings.Contains(strings.ToLower(ex.Name), query) ||
		strings.Contains(strings.ToLower(ex.Description), query) ||
		strings.Contains(strconv.Itoa(ex.Difficulty), query) ||
		strings.Contains(strconv.Itoa(ex.FavoriteCount), query) ||
		strings.Contains(strconv.Itoa(ex.SaveCount), query)
}

// less orders two exercises by the selected key, ascending
func less(a, b domain.Exercise, field SortField) bool {
	switch field {
	case SortName:
		return textCollator.CompareString(a.Name, b.Name) < 0
	case SortDescription:
		return textCollator.CompareString(a.Description, b.Description) < 0
	case SortFavorites:
		return a.FavoriteCount < b.FavoriteCount
	case SortSaves:
		return a.SaveCount < b.SaveCount
	default:
		return a.Difficulty < b.Difficulty
	}
}
