package shared

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pr0methevs/lazy-dispatchrr/config"
)

var (
	// Panel chrome
	TitleStyle       lipgloss.Style
	PanelBorderStyle lipgloss.Style
	PanelFocusStyle  lipgloss.Style

	// List entries
	CursorStyle lipgloss.Style
	MutedStyle  lipgloss.Style
	AccentStyle lipgloss.Style

	// Output feedback
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	InfoStyle    lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style

	// Overlays
	OverlayStyle lipgloss.Style

	// Help
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style

	// Spinner
	SpinnerStyle lipgloss.Style
)

// InitStyles configures all styles from a resolved theme.
func InitStyles(theme config.ThemeConfig) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	PanelBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border))

	PanelFocusStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus))

	CursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CursorBG))

	MutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	AccentStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Info))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFG)).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Padding(0, 1)

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	SpinnerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))
}
