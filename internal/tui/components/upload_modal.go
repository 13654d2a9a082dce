package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kwhalen/repbook/internal/tui/styles"
)

// UploadPhase tracks where the upload modal is in its flow
type UploadPhase int

const (
	UploadPhaseChoosing UploadPhase = iota // entering a file path
	UploadPhaseRunning                     // transfer in flight
)

// UploadModal drives the video upload flow: pick a local file, then watch
// the transfer progress until the terminal event
type UploadModal struct {
	visible      bool
	phase        UploadPhase
	exerciseName string
	pathInput    textinput.Model
	bar          progress.Model
	percent      float64
}

// NewUploadModal creates a new upload modal
func NewUploadModal() UploadModal {
	ti := textinput.New()
	ti.Placeholder = "/path/to/video.mp4"
	ti.CharLimit = 512
	ti.Width = 48
	ti.Prompt = "> "

	return UploadModal{
		pathInput: ti,
		bar:       progress.New(progress.WithDefaultGradient()),
	}
}

// Show opens the modal in the path-choosing phase
func (m *UploadModal) Show(exerciseName string) {
	m.visible = true
	m.phase = UploadPhaseChoosing
	m.exerciseName = exerciseName
	m.percent = 0
	m.pathInput.SetValue("")
	m.pathInput.Focus()
}

// Hide dismisses the modal
func (m *UploadModal) Hide() {
	m.visible = false
	m.pathInput.Blur()
}

// IsVisible returns whether the modal is shown
func (m UploadModal) IsVisible() bool {
	return m.visible
}

// Phase returns the current flow phase
func (m UploadModal) Phase() UploadPhase {
	return m.phase
}

// Path returns the entered file path, trimmed
func (m UploadModal) Path() string {
	return strings.TrimSpace(m.pathInput.Value())
}

// StartTransfer switches to the running phase
func (m *UploadModal) StartTransfer() {
	m.phase = UploadPhaseRunning
	m.percent = 0
	m.pathInput.Blur()
}

// SetPercent records the latest progress report
func (m *UploadModal) SetPercent(percent float64) {
	m.percent = percent
}

// Update handles input events while choosing, returns (modal, cmd, submitted)
func (m UploadModal) Update(msg tea.Msg) (UploadModal, tea.Cmd, bool) {
	if !m.visible || m.phase != UploadPhaseChoosing {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		return m, nil, m.Path() != ""
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd, false
}

// View renders the upload modal
func (m UploadModal) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Upload video · %s", m.exerciseName)))
	b.WriteString("\n\n")

	switch m.phase {
	case UploadPhaseChoosing:
		b.WriteString(styles.SubtitleStyle.Render("Video file"))
		b.WriteString("\n")
		b.WriteString(m.pathInput.View())
		b.WriteString("\n\n")
		b.WriteString(styles.DimStyle.Render("enter to upload, esc to cancel"))
	case UploadPhaseRunning:
		b.WriteString(m.bar.ViewAs(m.percent / 100))
		b.WriteString(fmt.Sprintf("  %3.0f%%\n\n", m.percent))
		b.WriteString(styles.DimStyle.Render("esc to cancel upload"))
	}

	return styles.ActiveBorder.Padding(0, 2).Render(b.String())
}
