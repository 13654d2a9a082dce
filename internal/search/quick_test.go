package search

import (
	"testing"

	"github.com/kwhalen/repbook/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestQuickIndexFind(t *testing.T) {
	index := NewQuickIndex(sampleExercises())

	matches := index.Find("bnch")
	require.NotEmpty(t, matches)
	require.Equal(t, "Bench Press", matches[0].Exercise.Name)
	require.NotEmpty(t, matches[0].MatchedIndexes)
}

func TestQuickIndexFindCaseInsensitive(t *testing.T) {
	index := NewQuickIndex(sampleExercises())

	upper := index.Find("DLFT")
	lower := index.Find("dlft")
	require.NotEmpty(t, upper)
	require.Equal(t, lower[0].Exercise.ID, upper[0].Exercise.ID)
}

func TestQuickIndexFindEmptyQuery(t *testing.T) {
	index := NewQuickIndex(sampleExercises())
	require.Nil(t, index.Find(""))
	require.Nil(t, index.Find("   "))
}

func TestQuickIndexEmpty(t *testing.T) {
	index := NewQuickIndex(nil)
	require.Empty(t, index.Find("press"))
}

func TestQuickIndexMatchOffsetsAreBytes(t *testing.T) {
	index := NewQuickIndex([]domain.Exercise{{ID: 1, Name: "Übung"}})

	matches := index.Find("b")
	require.Len(t, matches, 1)
	// Ü is two bytes, so 'b' sits at byte offset 2
	require.Equal(t, []int{2}, matches[0].MatchedIndexes)
}

func TestQuickIndexFallsBackToNormalizedRanks(t *testing.T) {
	exercises := append(sampleExercises(), domain.Exercise{ID: 9, Name: "Überkopfdrücken"})
	index := NewQuickIndex(exercises)

	// No plain 'u' in the name, so the byte-wise matcher finds nothing and
	// the diacritic-normalized ranking takes over
	matches := index.Find("uberkopf")
	require.NotEmpty(t, matches)
	require.Equal(t, 9, matches[0].Exercise.ID)
	require.Empty(t, matches[0].MatchedIndexes)
}

func TestQuickIndexFallbackMisses(t *testing.T) {
	index := NewQuickIndex(sampleExercises())
	require.Empty(t, index.Find("zzzzzz"))
}
