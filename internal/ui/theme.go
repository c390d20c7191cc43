package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// Palette is the set of colours one theme uses.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Border  lipgloss.Color
}

var palettes = map[string]Palette{
	model.ThemeDark: {
		Primary: lipgloss.Color("#7D56F4"),
		Accent:  lipgloss.Color("#43BF6D"),
		Text:    lipgloss.Color("#FFFFFF"),
		Subtle:  lipgloss.Color("#626262"),
		Error:   lipgloss.Color("#FF5F5F"),
		Success: lipgloss.Color("#43BF6D"),
		Border:  lipgloss.Color("#7D56F4"),
	},
	model.ThemeLight: {
		Primary: lipgloss.Color("#3B4CCA"),
		Accent:  lipgloss.Color("#00875A"),
		Text:    lipgloss.Color("#1A1A1A"),
		Subtle:  lipgloss.Color("#8A8A8A"),
		Error:   lipgloss.Color("#C62828"),
		Success: lipgloss.Color("#00875A"),
		Border:  lipgloss.Color("#B0B0B0"),
	},
	model.ThemeSepia: {
		Primary: lipgloss.Color("#8B5E34"),
		Accent:  lipgloss.Color("#A47148"),
		Text:    lipgloss.Color("#3E2C1C"),
		Subtle:  lipgloss.Color("#9C8A76"),
		Error:   lipgloss.Color("#A23B2A"),
		Success: lipgloss.Color("#5E7C3A"),
		Border:  lipgloss.Color("#C8A97E"),
	},
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Name     string
	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Text     lipgloss.Style
	Subtle   lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Label    lipgloss.Style
	Panel    lipgloss.Style
	Modal    lipgloss.Style
}

// StylesFor returns the styles of theme. Unknown themes fall back to dark.
func StylesFor(theme string) Styles {
	name := theme
	p, ok := palettes[theme]
	if !ok {
		name = model.ThemeDark
		p = palettes[model.ThemeDark]
	}

	return Styles{
		Name:     name,
		Title:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Tab:      lipgloss.NewStyle().Foreground(p.Subtle).Padding(0, 1),
		TabOn:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true).Padding(0, 1),
		Text:     lipgloss.NewStyle().Foreground(p.Text),
		Subtle:   lipgloss.NewStyle().Foreground(p.Subtle),
		Selected: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(p.Error),
		Success:  lipgloss.NewStyle().Foreground(p.Success),
		Label:    lipgloss.NewStyle().Foreground(p.Subtle),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		Modal:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(p.Primary).Padding(1, 2),
	}
}

// NextTheme returns the theme after current in model.Themes order.
func NextTheme(current string) string {
	for i, t := range model.Themes {
		if t == current {
			return model.Themes[(i+1)%len(model.Themes)]
		}
	}
	return model.Themes[0]
}
