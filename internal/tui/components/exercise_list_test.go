package components

import (
	"testing"

	"github.com/kwhalen/repbook/internal/domain"
	"github.com/stretchr/testify/require"
)

func listItems() []domain.Exercise {
	return []domain.Exercise{
		{ID: 1, Name: "Bench Press"},
		{ID: 2, Name: "Deadlift"},
		{ID: 3, Name: "Air Squat", HasFavorited: true},
	}
}

func TestSetItemsKeepsSelectionByID(t *testing.T) {
	var l ExerciseList
	l.SetItems(listItems())
	l.MoveDown() // cursor on Deadlift

	// Re-fetch reorders the list; the cursor must follow the record
	l.SetItems([]domain.Exercise{
		{ID: 3, Name: "Air Squat"},
		{ID: 2, Name: "Deadlift"},
		{ID: 1, Name: "Bench Press"},
	})

	sel := l.Selected()
	require.NotNil(t, sel)
	require.Equal(t, 2, sel.ID)
}

func TestSetItemsResetsWhenSelectionGone(t *testing.T) {
	var l ExerciseList
	l.SetItems(listItems())
	l.MoveDown()
	l.MoveDown() // cursor on Air Squat

	l.SetItems([]domain.Exercise{{ID: 1, Name: "Bench Press"}})

	sel := l.Selected()
	require.NotNil(t, sel)
	require.Equal(t, 1, sel.ID)
}

func TestSelectedNilOnEmptyList(t *testing.T) {
	var l ExerciseList
	require.Nil(t, l.Selected())

	l.SetItems(listItems())
	l.SetItems(nil)
	require.Nil(t, l.Selected())
}

func TestCursorStaysInBounds(t *testing.T) {
	var l ExerciseList
	l.SetItems(listItems())

	l.MoveUp()
	require.Equal(t, 1, l.Selected().ID)

	for i := 0; i < 10; i++ {
		l.MoveDown()
	}
	require.Equal(t, 3, l.Selected().ID)
}

func TestSelectByID(t *testing.T) {
	var l ExerciseList
	l.SetItems(listItems())
	l.MoveDown()
	l.MoveDown()

	require.True(t, l.Select(1))
	require.Equal(t, 1, l.Selected().ID)

	require.False(t, l.Select(99))
	require.Equal(t, 1, l.Selected().ID)
}

func TestFlipFavoriteAndSaved(t *testing.T) {
	var l ExerciseList
	l.SetItems(listItems())

	require.True(t, l.FlipFavorite(1))
	require.False(t, l.FlipFavorite(1))
	require.False(t, l.FlipFavorite(3)) // was favorited, now off

	require.True(t, l.FlipSaved(2))
	require.False(t, l.FlipSaved(2))

	// Unknown ID is a no-op
	require.False(t, l.FlipFavorite(99))
}
