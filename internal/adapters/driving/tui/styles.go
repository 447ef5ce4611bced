package tui

import "github.com/charmbracelet/lipgloss"

// styles holds the pre-configured lipgloss styles for the browser.
type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
}

// defaultStyles returns the browser's colour scheme.
func defaultStyles() *styles {
	return &styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")).Background(lipgloss.Color("#45475A")),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true),
	}
}
