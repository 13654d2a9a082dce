package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Teal       = lipgloss.Color("#14B8A6")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Yellow     = lipgloss.Color("#F59E0B")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Teal)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Teal)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Teal).
			Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight)
)

// Engagement indicators
const (
	FavoriteOnChar  = "♥"
	FavoriteOffChar = "♡"
	SaveOnChar      = "◆"
	SaveOffChar     = "◇"
	VideoChar       = "▶"
)

var (
	FavoriteOn  = lipgloss.NewStyle().Foreground(Red).Render(FavoriteOnChar)
	FavoriteOff = lipgloss.NewStyle().Foreground(DimGray).Render(FavoriteOffChar)
	SaveOn      = lipgloss.NewStyle().Foreground(Teal).Render(SaveOnChar)
	SaveOff     = lipgloss.NewStyle().Foreground(DimGray).Render(SaveOffChar)
	VideoMark   = lipgloss.NewStyle().Foreground(Yellow).Render(VideoChar)
)

// SpinnerFrames are the animation frames for loading indicators
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
