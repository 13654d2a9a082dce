package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Tab   key.Binding
	Enter key.Binding

	// View switching
	Dashboard  key.Binding
	Collection key.Binding
	Admin      key.Binding

	// Actions
	Quit          key.Binding
	Help          key.Binding
	Escape        key.Binding
	Filter        key.Binding
	QuickSearch   key.Binding
	Sort          key.Binding
	FavoritesOnly key.Binding
	Reload        key.Binding

	// Exercise actions
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Favorite key.Binding
	Save     key.Binding
	Rate     key.Binding
	Users    key.Binding
	Upload   key.Binding

	// Session actions
	Logout  key.Binding
	Refresh key.Binding

	// Confirmations
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Collection: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "collection"),
		),
		Admin: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "admin"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		QuickSearch: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "quick search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		FavoritesOnly: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "favorites only"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload list"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new exercise"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle favorite"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle save"),
		),
		Rate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rate"),
		),
		Users: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "view users"),
		),
		Upload: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "upload video"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logout"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "refresh token"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}
