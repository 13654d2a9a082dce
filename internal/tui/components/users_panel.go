package components

import (
	"fmt"
	"strings"

	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/tui/styles"
)

// UsersPanel shows who favorited and who saved the selected exercise
type UsersPanel struct {
	visible      bool
	exerciseName string
	users        domain.ExerciseUsers
}

// Show displays the panel for an exercise
func (p *UsersPanel) Show(exerciseName string, users domain.ExerciseUsers) {
	p.visible = true
	p.exerciseName = exerciseName
	p.users = users
}

// Hide dismisses the panel
func (p *UsersPanel) Hide() {
	p.visible = false
}

// IsVisible returns whether the panel is shown
func (p UsersPanel) IsVisible() bool {
	return p.visible
}

// View renders the panel
func (p UsersPanel) View() string {
	if !p.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Users · %s", p.exerciseName)))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentStyle.Render("Favorited by"))
	b.WriteString("\n")
	b.WriteString(renderUserList(p.users.FavoritedBy))
	b.WriteString("\n")

	b.WriteString(styles.AccentStyle.Render("Saved by"))
	b.WriteString("\n")
	b.WriteString(renderUserList(p.users.SavedBy))

	return styles.ActiveBorder.Padding(0, 2).Render(b.String())
}

func renderUserList(users []domain.User) string {
	if len(users) == 0 {
		return styles.DimStyle.Render("  (none)") + "\n"
	}

	var b strings.Builder
	for _, u := range users {
		b.WriteString("  " + u.Username + "\n")
	}
	return b.String()
}
