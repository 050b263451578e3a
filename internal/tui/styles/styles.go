// Package styles centralizes lipgloss styling for the TUI: a color palette
// switchable between named themes, plus the derived styles the panels use.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - reassigned when a theme is applied
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Panel styles
	PanelActive   lipgloss.Style
	PanelInactive lipgloss.Style
	PanelTitle    lipgloss.Style

	// Counter display
	CounterValue lipgloss.Style

	// Help footer
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Status line
	StatusLine lipgloss.Style
	ErrorText  lipgloss.Style
)

func init() {
	rebuild()
}

// rebuild derives every style from the current color variables. Called at
// init and after each palette change.
func rebuild() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2)

	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2)

	PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)

	CounterValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	HelpDesc = lipgloss.NewStyle().
		Foreground(MutedColor)

	StatusLine = lipgloss.NewStyle().
		Foreground(MutedColor)

	ErrorText = lipgloss.NewStyle().
		Foreground(ErrorColor)
}
