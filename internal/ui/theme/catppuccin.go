package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, trimmed to what the inline prompts use.
var (
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")

	Title    = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Subtext0)
	Selected = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	Warn     = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	OK       = lipgloss.NewStyle().Foreground(Green)
)
