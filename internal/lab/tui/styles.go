package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles the views share. The palette is
// cycled across field-map segments so adjacent fields stay visually
// distinct.
type Theme struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	Error     lipgloss.Style
	Hint      lipgloss.Style
	Footer    lipgloss.Style
	Pane      lipgloss.Style

	Palette []lipgloss.Color
}

// NewTheme returns the named theme; anything other than "light" gets the
// dark palette.
func NewTheme(name string) Theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}

func darkTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4")).Padding(0, 2),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		Focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD866")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")).Italic(true),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		Pane:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1),
		Palette: []lipgloss.Color{
			"#FF6188", "#A9DC76", "#78DCE8", "#FFD866", "#AB9DF2", "#FC9867",
		},
	}
}

func lightTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5A32C8")).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#5A32C8")).Padding(0, 2),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
		Focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B05A00")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C00000")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Pane:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#BBBBBB")).Padding(0, 1),
		Palette: []lipgloss.Color{
			"#B3003C", "#2E7D32", "#00708A", "#B05A00", "#5A32C8", "#A04000",
		},
	}
}

// segmentStyle returns the palette style for segment i.
func (t Theme) segmentStyle(i int) lipgloss.Style {
	c := t.Palette[i%len(t.Palette)]
	return lipgloss.NewStyle().Foreground(c)
}
