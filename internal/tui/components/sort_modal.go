package components

import (
	"strings"

	"github.com/kwhalen/repbook/internal/search"
	"github.com/kwhalen/repbook/internal/tui/styles"
)

// SortModal is a small popup for choosing the list sort key
type SortModal struct {
	visible bool
	options []search.SortField
	cursor  int
	active  search.SortField
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{
		options: []search.SortField{
			search.SortDifficulty,
			search.SortName,
			search.SortDescription,
			search.SortFavorites,
			search.SortSaves,
		},
	}
}

// Show displays the modal with the current sort key highlighted
func (m *SortModal) Show(active search.SortField) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, f := range m.options {
		if f == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// MoveUp moves the selection up
func (m *SortModal) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the selection down
func (m *SortModal) MoveDown() {
	if m.cursor < len(m.options)-1 {
		m.cursor++
	}
}

// Selection returns the highlighted sort field
func (m SortModal) Selection() search.SortField {
	return m.options[m.cursor]
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Sort by"))
	b.WriteString("\n\n")

	for i, field := range m.options {
		line := "  " + field.String()
		if field == m.active {
			line += " ●"
		}
		if i == m.cursor {
			line = styles.HighlightStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return styles.ActiveBorder.Padding(0, 2).Render(b.String())
}
