package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kwhalen/repbook/internal/search"
	"github.com/kwhalen/repbook/internal/tui/styles"
)

const maxQuickResults = 8

// QuickSearch is a fuzzy-search overlay over the fetched exercise names
type QuickSearch struct {
	visible bool
	input   textinput.Model
	index   *search.QuickIndex
	results []search.QuickMatch
	cursor  int
}

// NewQuickSearch creates a new quick-search overlay
func NewQuickSearch() QuickSearch {
	ti := textinput.New()
	ti.Placeholder = "Search exercises..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "/ "

	return QuickSearch{input: ti}
}

// Show opens the overlay over the given index
func (q *QuickSearch) Show(index *search.QuickIndex) {
	q.visible = true
	q.index = index
	q.results = nil
	q.cursor = 0
	q.input.SetValue("")
	q.input.Focus()
}

// Hide dismisses the overlay
func (q *QuickSearch) Hide() {
	q.visible = false
	q.input.Blur()
}

// IsVisible returns whether the overlay is shown
func (q QuickSearch) IsVisible() bool {
	return q.visible
}

// Selected returns the exercise ID under the cursor, or 0
func (q QuickSearch) Selected() int {
	if q.cursor < 0 || q.cursor >= len(q.results) {
		return 0
	}
	return q.results[q.cursor].Exercise.ID
}

// Update handles input events, returns (overlay, cmd, chosen)
func (q QuickSearch) Update(msg tea.Msg) (QuickSearch, tea.Cmd, bool) {
	if !q.visible {
		return q, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return q, nil, q.Selected() != 0
		case "up", "ctrl+k":
			if q.cursor > 0 {
				q.cursor--
			}
			return q, nil, false
		case "down", "ctrl+j":
			if q.cursor < len(q.results)-1 {
				q.cursor++
			}
			return q, nil, false
		}
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)

	if q.index != nil {
		q.results = q.index.Find(q.input.Value())
		if len(q.results) > maxQuickResults {
			q.results = q.results[:maxQuickResults]
		}
	}
	if q.cursor >= len(q.results) {
		q.cursor = 0
	}

	return q, cmd, false
}

// View renders the overlay with matched characters highlighted
func (q QuickSearch) View() string {
	if !q.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(q.input.View())
	b.WriteString("\n\n")

	if len(q.results) == 0 {
		b.WriteString(styles.DimStyle.Render("No matches"))
	}

	for i, r := range q.results {
		line := "  " + highlightMatches(r.Exercise.Name, r.MatchedIndexes)
		if i == q.cursor {
			line = styles.SelectedRowStyle.Render("  " + highlightMatches(r.Exercise.Name, r.MatchedIndexes))
		}
		b.WriteString(line)
		if i < len(q.results)-1 {
			b.WriteString("\n")
		}
	}

	return styles.ActiveBorder.Padding(0, 2).Render(b.String())
}

// highlightMatches emphasises the characters that matched the query. The
// offsets are byte positions into the name, not rune positions.
func highlightMatches(name string, indexes []int) string {
	matched := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range name {
		if matched[i] {
			b.WriteString(styles.AccentStyle.Bold(true).Render(string(r)))
		} else {
			b.WriteString(string(r))
		}
	}
	return b.String()
}
