package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kwhalen/repbook/internal/tui/styles"
)

const (
	authFieldUsername = iota
	authFieldPassword
	authFieldCount
)

// AuthForm collects a username and password for login or registration
type AuthForm struct {
	title  string
	inputs []textinput.Model
	focus  int
}

// NewAuthForm creates a credential form with the given title
func NewAuthForm(title string) AuthForm {
	inputs := make([]textinput.Model, authFieldCount)

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 32
	username.Prompt = "> "
	username.Focus()
	inputs[authFieldUsername] = username

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 32
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	inputs[authFieldPassword] = password

	return AuthForm{title: title, inputs: inputs}
}

// Reset clears both fields and focuses the username
func (f *AuthForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = authFieldUsername
	f.inputs[f.focus].Focus()
}

// Username returns the entered username, trimmed
func (f AuthForm) Username() string {
	return strings.TrimSpace(f.inputs[authFieldUsername].Value())
}

// Password returns the entered password
func (f AuthForm) Password() string {
	return f.inputs[authFieldPassword].Value()
}

// Valid reports whether both fields are filled
func (f AuthForm) Valid() bool {
	return f.Username() != "" && f.Password() != ""
}

// Update handles input events, returns (form, cmd, submitted)
func (f AuthForm) Update(msg tea.Msg) (AuthForm, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if f.focus == authFieldPassword {
				return f, nil, true
			}
			f.cycleFocus(1)
			return f, nil, false
		case "tab", "down":
			f.cycleFocus(1)
			return f, nil, false
		case "shift+tab", "up":
			f.cycleFocus(-1)
			return f, nil, false
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

func (f *AuthForm) cycleFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + authFieldCount) % authFieldCount
	f.inputs[f.focus].Focus()
}

// View renders the form
func (f AuthForm) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(f.title))
	b.WriteString("\n\n")
	b.WriteString(styles.SubtitleStyle.Render("Username"))
	b.WriteString("\n")
	b.WriteString(f.inputs[authFieldUsername].View())
	b.WriteString("\n\n")
	b.WriteString(styles.SubtitleStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(f.inputs[authFieldPassword].View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
