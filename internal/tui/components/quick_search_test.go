package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestHighlightMatchesUsesByteOffsets(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	// Ü is two bytes, so the matched 'b' sits at byte offset 2. Indexing
	// by rune position would style the 'u' instead.
	got := highlightMatches("Übung", []int{2})

	require.True(t, strings.HasPrefix(got, "Ü"), "leading rune must stay unstyled")
	require.Contains(t, got, "b\x1b[0m")
	require.NotContains(t, got, "u\x1b[0m")
}

func TestHighlightMatchesNoOffsets(t *testing.T) {
	require.Equal(t, "Deadlift", highlightMatches("Deadlift", nil))
}
