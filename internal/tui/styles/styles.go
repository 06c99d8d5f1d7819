// Package styles holds the lipgloss styles shared by the TUI components.
package styles

import (
	"skim/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the resolved style set for one theme.
type Styles struct {
	Title     lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Selected  lipgloss.Style
	Cursor    lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	StatusBar lipgloss.Style
	Prompt    lipgloss.Style
}

// FromConfig builds the style set from the configured theme colors.
func FromConfig(cfg *config.Config) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Primary)),
		Directory: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Directory)),
		File: lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Selected)),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Primary)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Muted)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Error)),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Muted)),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Primary)),
	}
}

// Default returns the style set for the default theme.
func Default() *Styles {
	cfg := config.New()
	cfg.ApplyTheme("default")
	return FromConfig(cfg)
}
