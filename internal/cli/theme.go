package cli

import "github.com/charmbracelet/lipgloss"

// Theme styles console output. The zero value prints plain text, which is
// what pipes and tests get.
type Theme struct {
	enabled bool
	header  lipgloss.Style
	failure lipgloss.Style
}

// NewTerminalTheme returns the styling used when stdout is a terminal.
func NewTerminalTheme() Theme {
	return Theme{
		enabled: true,
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (th Theme) Header(s string) string {
	if !th.enabled {
		return s
	}
	return th.header.Render(s)
}

func (th Theme) Failure(s string) string {
	if !th.enabled {
		return s
	}
	return th.failure.Render(s)
}
