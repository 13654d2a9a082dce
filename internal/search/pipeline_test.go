package search

import (
	"testing"

	"github.com/kwhalen/repbook/internal/domain"
	"github.com/stretchr/testify/require"
)

func sampleExercises() []domain.Exercise {
	return []domain.Exercise{
		{ID: 1, Name: "Bench Press", Description: "Chest compound", Difficulty: 5, FavoriteCount: 12, SaveCount: 3, HasFavorited: true},
		{ID: 2, Name: "Deadlift", Description: "Posterior chain", Difficulty: 8, FavoriteCount: 20, SaveCount: 9},
		{ID: 3, Name: "Air Squat", Description: "Bodyweight warmup", Difficulty: 2, FavoriteCount: 4, SaveCount: 9, HasFavorited: true},
		{ID: 4, Name: "Overhead Press", Description: "Shoulder compound", Difficulty: 5, FavoriteCount: 7, SaveCount: 1},
	}
}

func ids(exercises []domain.Exercise) []int {
	out := make([]int, len(exercises))
	for i, ex := range exercises {
		out[i] = ex.ID
	}
	return out
}

func TestApplyFilterMatchesAllFields(t *testing.T) {
	exercises := sampleExercises()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"name substring", "press", []int{1, 4}},
		{"case insensitive", "DEAD", []int{2}},
		{"description substring", "compound", []int{1, 4}},
		{"difficulty digits", "8", []int{2}},
		{"favorite count digits", "20", []int{2}},
		{"save count digits", "9", []int{3, 2}},
		{"no match", "zzz", nil},
		{"blank matches everything", "   ", []int{3, 1, 4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(exercises, Controls{Query: tt.query})
			require.Equal(t, tt.want, idsOrNil(got))
		})
	}
}

func idsOrNil(exercises []domain.Exercise) []int {
	if len(exercises) == 0 {
		return nil
	}
	return ids(exercises)
}

func TestApplyFavoritesOnly(t *testing.T) {
	got := Apply(sampleExercises(), Controls{FavoritesOnly: true})
	require.Equal(t, []int{3, 1}, ids(got))
	for _, ex := range got {
		require.True(t, ex.HasFavorited)
	}
}

func TestApplyFilterThenRestrict(t *testing.T) {
	// The query matches 1 and 4; only 1 is favorited
	got := Apply(sampleExercises(), Controls{Query: "press", FavoritesOnly: true})
	require.Equal(t, []int{1}, ids(got))
}

func TestApplySortFields(t *testing.T) {
	exercises := sampleExercises()

	tests := []struct {
		field SortField
		want  []int
	}{
		{SortDifficulty, []int{3, 1, 4, 2}},
		{SortName, []int{3, 1, 2, 4}},
		{SortFavorites, []int{3, 4, 1, 2}},
		{SortSaves, []int{4, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			got := Apply(exercises, Controls{SortBy: tt.field})
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplySortIsStable(t *testing.T) {
	// IDs 1 and 4 share difficulty 5; their fetched order must survive
	got := Apply(sampleExercises(), Controls{SortBy: SortDifficulty})
	require.Equal(t, []int{3, 1, 4, 2}, ids(got))

	// Saves ties 2 and 3 at 9
	got = Apply(sampleExercises(), Controls{SortBy: SortSaves})
	require.Equal(t, []int{4, 1, 2, 3}, ids(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	exercises := sampleExercises()
	original := ids(exercises)

	_ = Apply(exercises, Controls{Query: "press", FavoritesOnly: true, SortBy: SortName})

	require.Equal(t, original, ids(exercises))
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, Controls{Query: "press", SortBy: SortName})
	require.Empty(t, got)
}

func TestParseSortField(t *testing.T) {
	require.Equal(t, SortName, ParseSortField("name"))
	require.Equal(t, SortSaves, ParseSortField("SAVES"))
	require.Equal(t, SortDifficulty, ParseSortField(""))
	require.Equal(t, SortDifficulty, ParseSortField("bogus"))
}
