package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/log"
	"github.com/kwhalen/repbook/internal/search"
	"github.com/kwhalen/repbook/internal/session"
	"github.com/kwhalen/repbook/internal/store"
	"github.com/stretchr/testify/require"
)

// stubExercises serves a fixed list and fails favorite/save calls with
// toggleErr when set.
type stubExercises struct {
	exercises []domain.Exercise
	toggleErr error
}

func (s *stubExercises) ListExercises(_ context.Context) ([]domain.Exercise, error) {
	return s.exercises, nil
}

func (s *stubExercises) CreateExercise(_ context.Context, _ domain.ExerciseDraft) (domain.Exercise, error) {
	return domain.Exercise{}, nil
}

func (s *stubExercises) UpdateExercise(_ context.Context, _ int, _ domain.ExerciseDraft) error {
	return nil
}

func (s *stubExercises) AttachVideo(_ context.Context, _ int, _ string) error { return nil }
func (s *stubExercises) DeleteExercise(_ context.Context, _ int) error        { return nil }

func (s *stubExercises) GetExerciseUsers(_ context.Context, _ int) (domain.ExerciseUsers, error) {
	return domain.ExerciseUsers{}, nil
}

func (s *stubExercises) SetFavorite(_ context.Context, _ int, _ bool) error { return s.toggleErr }
func (s *stubExercises) SetSaved(_ context.Context, _ int, _ bool) error    { return s.toggleErr }
func (s *stubExercises) RateExercise(_ context.Context, _ int, _ int) error { return nil }

func newTestModel(t *testing.T, repo *stubExercises) *Model {
	t.Helper()

	sessions, err := store.NewSessionStore("")
	require.NoError(t, err)
	manager := session.NewManager(nil, sessions, log.NullLogger())

	m := NewModel(manager, repo, nil, nil, nil, search.SortDifficulty, log.NullLogger())
	m.state = StateDashboard
	m.mode = ModeBrowse
	m.Update(ExercisesLoadedMsg{Exercises: repo.exercises})
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFailedFavoriteToggleRestoresRow(t *testing.T) {
	repo := &stubExercises{
		exercises: []domain.Exercise{{ID: 1, Name: "Bench Press"}},
		toggleErr: errors.New("backend down"),
	}
	m := newTestModel(t, repo)

	_, cmd := m.Update(keyRune('f'))
	require.NotNil(t, cmd)
	require.True(t, m.list.Selected().HasFavorited, "the flip shows before the request resolves")

	m.Update(cmd())

	sel := m.list.Selected()
	require.NotNil(t, sel)
	require.False(t, sel.HasFavorited, "a failed toggle must leave the row matching server state")
	require.True(t, m.alert.IsVisible())
}

func TestFailedSaveToggleRestoresRow(t *testing.T) {
	repo := &stubExercises{
		exercises: []domain.Exercise{{ID: 1, Name: "Deadlift", HasSaved: true}},
		toggleErr: errors.New("backend down"),
	}
	m := newTestModel(t, repo)

	_, cmd := m.Update(keyRune('s'))
	require.NotNil(t, cmd)
	require.False(t, m.list.Selected().HasSaved)

	m.Update(cmd())

	require.True(t, m.list.Selected().HasSaved, "a failed toggle must leave the row matching server state")
}

func TestAcknowledgedToggleTriggersResync(t *testing.T) {
	repo := &stubExercises{
		exercises: []domain.Exercise{{ID: 1, Name: "Bench Press"}},
	}
	m := newTestModel(t, repo)

	_, cmd := m.Update(keyRune('f'))
	require.NotNil(t, cmd)

	msg := cmd()
	applied, ok := msg.(ToggleAppliedMsg)
	require.True(t, ok)
	require.Equal(t, "favorite", applied.Kind)

	_, refetch := m.Update(msg)
	require.NotNil(t, refetch, "an acknowledged toggle re-fetches the list")
	require.True(t, m.loading)
}
