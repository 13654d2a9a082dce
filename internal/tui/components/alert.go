package components

import (
	"strings"

	"github.com/kwhalen/repbook/internal/tui/styles"
)

// Alert is a blocking message box. Every failure surfaces here and the
// user must dismiss it before continuing; nothing is retried for them.
type Alert struct {
	visible bool
	title   string
	body    string
	isError bool
}

// ShowError displays an error alert
func (a *Alert) ShowError(title, body string) {
	a.visible = true
	a.title = title
	a.body = body
	a.isError = true
}

// ShowInfo displays an informational alert
func (a *Alert) ShowInfo(title, body string) {
	a.visible = true
	a.title = title
	a.body = body
	a.isError = false
}

// Hide dismisses the alert
func (a *Alert) Hide() {
	a.visible = false
}

// IsVisible returns whether the alert is shown
func (a Alert) IsVisible() bool {
	return a.visible
}

// View renders the alert box
func (a Alert) View() string {
	if !a.visible {
		return ""
	}

	titleStyle := styles.SuccessStyle
	if a.isError {
		titleStyle = styles.ErrorStyle
	}

	var b strings.Builder
	b.WriteString(titleStyle.Bold(true).Render(a.title))
	b.WriteString("\n\n")
	b.WriteString(wrapText(a.body, 56))
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render("press enter to dismiss"))

	return styles.ActiveBorder.Padding(0, 2).Render(b.String())
}

// wrapText performs simple word wrapping at the given width
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
