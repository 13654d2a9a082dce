package components

import (
	"fmt"
	"strings"

	"github.com/kwhalen/repbook/internal/tui/styles"
)

// RateModal is a popup for choosing a 1-5 rating
type RateModal struct {
	visible      bool
	exerciseName string
	rating       int
}

// NewRateModal creates a new rating modal
func NewRateModal() RateModal {
	return RateModal{rating: 3}
}

// Show displays the modal for an exercise
func (m *RateModal) Show(exerciseName string) {
	m.visible = true
	m.exerciseName = exerciseName
	m.rating = 3
}

// Hide dismisses the modal
func (m *RateModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m RateModal) IsVisible() bool {
	return m.visible
}

// Increase bumps the rating up to the 5 cap
func (m *RateModal) Increase() {
	if m.rating < 5 {
		m.rating++
	}
}

// Decrease lowers the rating down to the 1 floor
func (m *RateModal) Decrease() {
	if m.rating > 1 {
		m.rating--
	}
}

// SetRating sets an explicit value when a digit key is pressed
func (m *RateModal) SetRating(r int) {
	if r >= 1 && r <= 5 {
		m.rating = r
	}
}

// Rating returns the chosen value
func (m RateModal) Rating() int {
	return m.rating
}

// View renders the rating modal
func (m RateModal) View() string {
	if !m.visible {
		return ""
	}

	stars := strings.Repeat("★", m.rating) + strings.Repeat("☆", 5-m.rating)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Rate %q", m.exerciseName)))
	b.WriteString("\n\n  ")
	b.WriteString(styles.AccentStyle.Render(stars))
	b.WriteString(fmt.Sprintf("  %d/5\n\n", m.rating))
	b.WriteString(styles.DimStyle.Render("←/→ or 1-5 to choose, enter to submit"))

	return styles.ActiveBorder.Padding(0, 2).Render(b.String())
}
