package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/tui/styles"
)

// View renders the current state
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var body string
	switch m.state {
	case StateLogin:
		body = m.renderAuth("RepBook", m.loginForm.View(), "enter: log in · ctrl+r: create account · ctrl+c: quit")
	case StateRegister:
		body = m.renderAuth("Create account", m.registerForm.View(), "enter: register · esc: back to login")
	case StateDashboard:
		body = m.renderDashboard()
	case StateCollection:
		body = m.renderCollection()
	case StateAdmin:
		body = m.renderAdmin()
	}

	if m.alert.IsVisible() {
		return m.overlay(body, m.alert.View())
	}
	return body
}

// renderAuth centers a credential form with a footer hint
func (m *Model) renderAuth(title, form, hint string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render(title),
		"",
		form,
		"",
		styles.DimStyle.Render(hint),
	)
	if m.loading {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", m.spinner()+" working...")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderDashboard() string {
	header := m.renderHeader("Dashboard")
	footer := m.renderFooter()

	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if listHeight < 3 {
		listHeight = 3
	}

	var body string
	switch m.mode {
	case ModeCreate, ModeEdit:
		body = lipgloss.Place(m.width, listHeight, lipgloss.Center, lipgloss.Center, m.exerciseForm.View())
	case ModeSort:
		body = m.overlayOn(m.list.View(m.width, listHeight), m.sortModal.View(), listHeight)
	case ModeRate:
		body = m.overlayOn(m.list.View(m.width, listHeight), m.rateModal.View(), listHeight)
	case ModeUsers:
		body = m.overlayOn(m.list.View(m.width, listHeight), m.usersPanel.View(), listHeight)
	case ModeUpload:
		body = m.overlayOn(m.list.View(m.width, listHeight), m.uploadModal.View(), listHeight)
	case ModeQuickSearch:
		body = m.overlayOn(m.list.View(m.width, listHeight), m.quickSearch.View(), listHeight)
	case ModeConfirmDelete:
		body = m.overlayOn(m.list.View(m.width, listHeight), m.renderDeleteConfirm(), listHeight)
	default:
		body = m.list.View(m.width, listHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderCollection() string {
	header := m.renderHeader("Collection")
	footer := m.renderFooter()

	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if listHeight < 3 {
		listHeight = 3
	}

	var body string
	if m.collectionList.Len() == 0 && !m.loading {
		body = lipgloss.Place(m.width, listHeight, lipgloss.Center, lipgloss.Center,
			styles.DimStyle.Render("Nothing saved or favorited yet."))
	} else {
		body = m.collectionList.View(m.width, listHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderAdmin() string {
	header := m.renderHeader("Admin")
	footer := m.renderFooter()

	source := "local database"
	if m.dataSource == domain.DataSourceCloud {
		source = "cloud store"
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Data source"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Active source: %s\n\n", styles.AccentStyle.Render(source)))
	b.WriteString(styles.DimStyle.Render("t: toggle source · m: migrate exercises to cloud"))

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
		styles.ActiveBorder.Padding(1, 2).Render(b.String()))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader renders the tab bar with the active view highlighted
func (m *Model) renderHeader(active string) string {
	tabs := []string{"Dashboard", "Collection", "Admin"}
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf(" %d %s ", i+1, tab)
		if tab == active {
			parts = append(parts, styles.HighlightStyle.Render(label))
		} else {
			parts = append(parts, styles.DimStyle.Render(label))
		}
	}

	left := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	right := ""
	if id, ok := m.sessions.Identity(); ok {
		right = styles.DimStyle.Render("user " + id.UserID)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter renders the filter line and status bar
func (m *Model) renderFooter() string {
	var left string
	switch {
	case m.mode == ModeFilter:
		left = m.filterInput.View()
	case m.controls.Query != "" || m.controls.FavoritesOnly:
		badges := []string{}
		if m.controls.Query != "" {
			badges = append(badges, fmt.Sprintf("filter: %q", m.controls.Query))
		}
		if m.controls.FavoritesOnly {
			badges = append(badges, "favorites only")
		}
		left = styles.AccentStyle.Render(strings.Join(badges, " · "))
	default:
		left = styles.DimStyle.Render("? help")
	}

	left += styles.DimStyle.Render("  sort: " + m.controls.SortBy.String())

	var right string
	switch {
	case m.loading:
		right = m.spinner() + " " + styles.DimStyle.Render("loading")
	case m.statusMsg != "":
		if m.statusIsErr {
			right = styles.ErrorStyle.Render(m.statusMsg)
		} else {
			right = styles.DimStyle.Render(m.statusMsg)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderDeleteConfirm() string {
	name := ""
	if m.pendingDelete != nil {
		name = m.pendingDelete.Name
	}
	body := fmt.Sprintf("Delete %q?\n\n%s", name,
		styles.DimStyle.Render("y: delete · n: keep"))
	return styles.ActiveBorder.Padding(1, 2).Render(
		styles.ErrorStyle.Render("Confirm delete") + "\n\n" + body)
}

func (m *Model) spinner() string {
	return styles.AccentStyle.Render(styles.SpinnerFrames[m.spinnerFrame%len(styles.SpinnerFrames)])
}

// overlay centers a box over the full screen
func (m *Model) overlay(_, box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// overlayOn centers a box within the list area
func (m *Model) overlayOn(_, box string, height int) string {
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}
