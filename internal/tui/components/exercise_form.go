package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kwhalen/repbook/internal/domain"
	"github.com/kwhalen/repbook/internal/tui/styles"
)

const (
	exFieldName = iota
	exFieldDescription
	exFieldDifficulty
	exFieldPublic
	exFieldCount
)

// ExerciseForm collects the editable exercise fields for create and edit
type ExerciseForm struct {
	title    string
	inputs   []textinput.Model // name, description, difficulty
	isPublic bool
	focus    int
}

// NewExerciseForm creates an empty exercise form
func NewExerciseForm() ExerciseForm {
	inputs := make([]textinput.Model, exFieldPublic)

	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 100
	name.Width = 40
	name.Prompt = "> "
	inputs[exFieldName] = name

	description := textinput.New()
	description.Placeholder = "Description"
	description.CharLimit = 500
	description.Width = 40
	description.Prompt = "> "
	inputs[exFieldDescription] = description

	difficulty := textinput.New()
	difficulty.Placeholder = "Difficulty (1-5)"
	difficulty.CharLimit = 2
	difficulty.Width = 16
	difficulty.Prompt = "> "
	inputs[exFieldDifficulty] = difficulty

	return ExerciseForm{inputs: inputs, isPublic: true}
}

// ShowCreate resets the form for a new exercise
func (f *ExerciseForm) ShowCreate() {
	f.title = "New Exercise"
	f.setValues(domain.ExerciseDraft{IsPublic: true})
}

// ShowEdit loads an existing exercise into the form
func (f *ExerciseForm) ShowEdit(ex domain.Exercise) {
	f.title = fmt.Sprintf("Edit %q", ex.Name)
	f.setValues(domain.ExerciseDraft{
		Name:        ex.Name,
		Description: ex.Description,
		Difficulty:  ex.Difficulty,
		IsPublic:    ex.IsPublic,
	})
}

func (f *ExerciseForm) setValues(draft domain.ExerciseDraft) {
	f.inputs[exFieldName].SetValue(draft.Name)
	f.inputs[exFieldDescription].SetValue(draft.Description)
	if draft.Difficulty > 0 {
		f.inputs[exFieldDifficulty].SetValue(strconv.Itoa(draft.Difficulty))
	} else {
		f.inputs[exFieldDifficulty].SetValue("")
	}
	f.isPublic = draft.IsPublic

	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = exFieldName
	f.inputs[f.focus].Focus()
}

// Draft validates and returns the entered fields
func (f ExerciseForm) Draft() (domain.ExerciseDraft, error) {
	name := strings.TrimSpace(f.inputs[exFieldName].Value())
	if name == "" {
		return domain.ExerciseDraft{}, fmt.Errorf("name is required")
	}

	difficulty, err := strconv.Atoi(strings.TrimSpace(f.inputs[exFieldDifficulty].Value()))
	if err != nil || difficulty < 1 {
		return domain.ExerciseDraft{}, fmt.Errorf("difficulty must be a positive number")
	}

	return domain.ExerciseDraft{
		Name:        name,
		Description: strings.TrimSpace(f.inputs[exFieldDescription].Value()),
		Difficulty:  difficulty,
		IsPublic:    f.isPublic,
	}, nil
}

// Update handles input events, returns (form, cmd, submitted)
func (f ExerciseForm) Update(msg tea.Msg) (ExerciseForm, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if f.focus == exFieldPublic {
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
		case " ":
			if f.focus == exFieldPublic {
				f.isPublic = !f.isPublic
				return f, nil, false
			}
		}
	}

	if f.focus < exFieldPublic {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd, false
	}
	return f, nil, false
}

func (f *ExerciseForm) cycleFocus(delta int) {
	if f.focus < exFieldPublic {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + delta + exFieldCount) % exFieldCount
	if f.focus < exFieldPublic {
		f.inputs[f.focus].Focus()
	}
}

// View renders the form
func (f ExerciseForm) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(f.title))
	b.WriteString("\n\n")

	labels := []string{"Name", "Description", "Difficulty"}
	for i, label := range labels {
		b.WriteString(styles.SubtitleStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}

	publicLabel := "Public"
	check := "[ ]"
	if f.isPublic {
		check = "[x]"
	}
	line := fmt.Sprintf("%s %s", check, publicLabel)
	if f.focus == exFieldPublic {
		line = styles.AccentStyle.Render(line + "  (space to toggle, enter to submit)")
	} else {
		line = styles.SubtitleStyle.Render(line)
	}
	b.WriteString(line)

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
