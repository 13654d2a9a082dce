package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/tui/styles"
)

// ExerciseList renders a scrollable list of exercises with a cursor
type ExerciseList struct {
	items  []domain.Exercise
	cursor int
	offset int
}

// SetItems replaces the list contents, keeping the cursor on the same
// record when it survives the refresh
func (l *ExerciseList) SetItems(items []domain.Exercise) {
	var selectedID int
	if sel := l.Selected(); sel != nil {
		selectedID = sel.ID
	}

	l.items = items
	l.cursor = 0
	for i, ex := range items {
		if selectedID != 0 && ex.ID == selectedID {
			l.cursor = i
			break
		}
	}
	if l.cursor >= len(items) {
		l.cursor = 0
		l.offset = 0
	}
}

// Items returns the current list contents
func (l *ExerciseList) Items() []domain.Exercise {
	return l.items
}

// Len returns the number of listed exercises
func (l *ExerciseList) Len() int {
	return len(l.items)
}

// Selected returns the exercise under the cursor, or nil for an empty list
func (l *ExerciseList) Selected() *domain.Exercise {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return nil
	}
	return &l.items[l.cursor]
}

// FlipFavorite flips the displayed favorite mark for a row. This is the
// only optimistic mutation in the client; the next full re-fetch
// reconciles with server truth.
func (l *ExerciseList) FlipFavorite(id int) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].HasFavorited = !l.items[i].HasFavorited
			return l.items[i].HasFavorited
		}
	}
	return false
}

// FlipSaved flips the displayed save mark for a row
func (l *ExerciseList) FlipSaved(id int) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].HasSaved = !l.items[i].HasSaved
			return l.items[i].HasSaved
		}
	}
	return false
}

// Select moves the cursor to the exercise with the given ID. Returns false
// when the ID is not in the current list.
func (l *ExerciseList) Select(id int) bool {
	for i, ex := range l.items {
		if ex.ID == id {
			l.cursor = i
			return true
		}
	}
	return false
}

// MoveUp moves the cursor up one row
func (l *ExerciseList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor down one row
func (l *ExerciseList) MoveDown() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// View renders the list within the given dimensions
func (l *ExerciseList) View(width, height int) string {
	if len(l.items) == 0 {
		return styles.DimStyle.Render("No exercises to show.")
	}

	rowsPerItem := 2
	visible := height / rowsPerItem
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor in the window
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+visible {
		l.offset = l.cursor - visible + 1
	}

	end := l.offset + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	var b strings.Builder
	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderItem(i, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (l *ExerciseList) renderItem(i, width int) string {
	ex := l.items[i]

	fav := styles.FavoriteOff
	if ex.HasFavorited {
		fav = styles.FavoriteOn
	}
	saved := styles.SaveOff
	if ex.HasSaved {
		saved = styles.SaveOn
	}
	video := " "
	if ex.HasVideo() {
		video = styles.VideoMark
	}

	title := fmt.Sprintf("%s %s %s %s  [%s]", fav, saved, video,
		styles.TitleStyle.Render(ex.Name), ex.Visibility())

	detail := fmt.Sprintf("   %s  ·  difficulty %d  ·  ♥ %d  ·  ◆ %d  ·  %s",
		truncate(ex.Description, width/2), ex.Difficulty,
		ex.FavoriteCount, ex.SaveCount, ex.RatingLabel())

	line := title + "\n" + styles.SubtitleStyle.Render(detail)
	if i == l.cursor {
		return styles.SelectedRowStyle.Width(width).Render(line)
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}

// truncate shortens s to max runes, appending an ellipsis when cut
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
