package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pulsesoul/pkg/data"
)

// Palette is the set of colors one theme is drawn with.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Highlight  lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:    lipgloss.Color("#2DD4BF"),
		Secondary:  lipgloss.Color("#C792EA"),
		Success:    lipgloss.Color("#C3E88D"),
		Warning:    lipgloss.Color("#FFCB6B"),
		Error:      lipgloss.Color("#F07178"),
		Info:       lipgloss.Color("#82AAFF"),
		Muted:      lipgloss.Color("#546E7A"),
		Background: lipgloss.Color("#0F172A"),
		Foreground: lipgloss.Color("#EEFFFF"),
		Highlight:  lipgloss.Color("#1E293B"),
	}

	LightPalette = Palette{
		Primary:    lipgloss.Color("#0F766E"),
		Secondary:  lipgloss.Color("#7C3AED"),
		Success:    lipgloss.Color("#15803D"),
		Warning:    lipgloss.Color("#B45309"),
		Error:      lipgloss.Color("#B91C1C"),
		Info:       lipgloss.Color("#1D4ED8"),
		Muted:      lipgloss.Color("#64748B"),
		Background: lipgloss.Color("#F8FAFC"),
		Foreground: lipgloss.Color("#0F172A"),
		Highlight:  lipgloss.Color("#E2E8F0"),
	}

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Current is the theme the package-level styles were last built for.
var Current data.Theme

// Base styles, rebuilt by Apply
var (
	TitleStyle         lipgloss.Style
	SubtitleStyle      lipgloss.Style
	TextStyle          lipgloss.Style
	ArabicStyle        lipgloss.Style
	MutedStyle         lipgloss.Style
	SelectedStyle      lipgloss.Style
	CardStyle          lipgloss.Style
	ActiveCardStyle    lipgloss.Style
	HeaderStyle        lipgloss.Style
	StatusLoading      lipgloss.Style
	StatusCompleted    lipgloss.Style
	StatusError        lipgloss.Style
	ProgressBarStyle   lipgloss.Style
	ProgressEmptyStyle lipgloss.Style
	ActiveTabStyle     lipgloss.Style
	InactiveTabStyle   lipgloss.Style
	HelpStyle          lipgloss.Style
	InputStyle         lipgloss.Style
	FocusedInputStyle  lipgloss.Style
)

func init() {
	Apply(data.DefaultTheme)
}

func PaletteFor(theme data.Theme) Palette {
	if theme == data.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// Apply rebuilds every style for theme. It is not safe for concurrent use
// with rendering; call it from the bubbletea update loop.
func Apply(theme data.Theme) {
	p := PaletteFor(theme)
	Current = theme

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	ArabicStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true).
		Align(lipgloss.Right)

	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		BorderStyle(RoundedBorder).
		BorderForeground(p.Primary).
		Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Secondary).
		Padding(0, 2)

	ActiveCardStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(p.Primary).
		Padding(0, 2)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Highlight).
		Padding(0, 1)

	StatusLoading = lipgloss.NewStyle().
		Foreground(p.Info).
		Bold(true)

	StatusCompleted = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	StatusError = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
		Foreground(p.Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Background(p.Highlight).
		Padding(0, 2).
		Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		MarginTop(1)

	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Secondary).
		Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Primary).
		Padding(0, 1)
}

// Helper functions
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "downloading", "loading":
		return StatusLoading
	case "completed", "complete", "skipped":
		return StatusCompleted
	case "error", "failed":
		return StatusError
	default:
		return MutedStyle
	}
}
