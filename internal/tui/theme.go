package tui

import "github.com/charmbracelet/lipgloss"

// Theme is one "wallpaper": the palette the display rotates through.
type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Date      lipgloss.Style
	Prayer    lipgloss.Style
	Active    lipgloss.Style
	Countdown lipgloss.Style
	Quote     lipgloss.Style
	Source    lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
}

func newTheme(name string, border, accent, active, text, dim lipgloss.Color) Theme {
	return Theme{
		Name:      name,
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    border,
		Header:    lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Center),
		Clock:     lipgloss.NewStyle().Foreground(text).Bold(true),
		Date:      lipgloss.NewStyle().Foreground(text),
		Prayer:    lipgloss.NewStyle().Foreground(text).Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1).Align(lipgloss.Center),
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(active).Bold(true).Border(lipgloss.ThickBorder()).BorderForeground(active).Padding(0, 1).Align(lipgloss.Center),
		Countdown: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Quote:     lipgloss.NewStyle().Foreground(text).Italic(true),
		Source:    lipgloss.NewStyle().Foreground(dim),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(dim),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Themes is the wallpaper rotation, in order.
var Themes = []Theme{
	newTheme("Xhamia", lipgloss.Color("34"), lipgloss.Color("42"), lipgloss.Color("178"), lipgloss.Color("255"), lipgloss.Color("245")),
	newTheme("Nata", lipgloss.Color("62"), lipgloss.Color("111"), lipgloss.Color("221"), lipgloss.Color("252"), lipgloss.Color("60")),
	newTheme("Agimi", lipgloss.Color("173"), lipgloss.Color("215"), lipgloss.Color("220"), lipgloss.Color("230"), lipgloss.Color("138")),
	newTheme("Shkretëtira", lipgloss.Color("136"), lipgloss.Color("180"), lipgloss.Color("214"), lipgloss.Color("223"), lipgloss.Color("101")),
}

// ThemeAt returns the theme for a rotation index, wrapping out-of-range values.
func ThemeAt(i int) Theme {
	if len(Themes) == 0 {
		return Theme{}
	}
	if i < 0 {
		i = -i
	}
	return Themes[i%len(Themes)]
}
