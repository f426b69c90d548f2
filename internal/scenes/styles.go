package scenes

import "github.com/charmbracelet/lipgloss"

// #region styles

// Styles collects the terminal rendering for scene text. Zero value renders
// everything unstyled.
type Styles struct {
	Threshold lipgloss.Style
	Prompt    lipgloss.Style
	Response  lipgloss.Style
	Card      lipgloss.Style
	Meaning   lipgloss.Style
	Quiet     lipgloss.Style
}

// DefaultStyles returns the muted palette used in interactive sessions.
func DefaultStyles() Styles {
	return Styles{
		Threshold: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Response: lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")),
		Card: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("179")),
		Meaning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Quiet: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// PlainStyles returns styles with no colors, for piped output.
func PlainStyles() Styles {
	return Styles{}
}

// #endregion styles
