// Package styles provides shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Shared styles, rebuilt whenever the theme changes.
var (
	TitleStyle           lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextPrimaryBoldStyle lipgloss.Style

	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style

	StatusSuccessStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style

	ConfirmMessageStyle lipgloss.Style
	ModalStyle          lipgloss.Style

	SpinnerStyle lipgloss.Style
	HelpKeyStyle lipgloss.Style
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme applies a palette and rebuilds all shared styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)

	PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	PaneFocusedStyle = PaneStyle.BorderForeground(p.Primary)

	StatusSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	ConfirmMessageStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Warning).
		Padding(1, 2)

	SpinnerStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(p.Secondary)
}

// TierStyle returns the badge style for a performance tier label. The
// mapping mirrors the success/primary/warning/danger badge colors of the
// table's tier column.
func TierStyle(tier string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch tier {
	case "Excellent":
		return base.Foreground(CurrentPalette.Success)
	case "Good":
		return base.Foreground(CurrentPalette.Primary)
	case "Average":
		return base.Foreground(CurrentPalette.Warning)
	case "Poor":
		return base.Foreground(CurrentPalette.Error)
	default:
		return base.Foreground(CurrentPalette.Muted)
	}
}
