package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/portal"
)

const (
	WHITE      = lipgloss.Color("#FFFFFF")
	BLACK      = lipgloss.Color("#1E1E1E")
	GREY       = lipgloss.Color("#626262")
	BLUE       = lipgloss.Color("#0043a8")
	LIGHT_BLUE = lipgloss.Color("#8BE9FD")
	GREEN      = lipgloss.Color("#2E8B57")
	LIME       = lipgloss.Color("#50FA7B")
	RED        = lipgloss.Color("#FF5555")
	YELLOW     = lipgloss.Color("#F1FA8C")
	ORANGE     = lipgloss.Color("#E67E22")
)

// palette holds the colors of a theme.
type palette struct {
	Text   lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Good   lipgloss.Color
	Bad    lipgloss.Color
}

var palettes = map[portal.Theme]palette{
	portal.ThemeLight: {Text: BLACK, Accent: BLUE, Muted: GREY, Good: GREEN, Bad: ORANGE},
	portal.ThemeDark:  {Text: WHITE, Accent: LIGHT_BLUE, Muted: GREY, Good: LIME, Bad: RED},
	portal.ThemeBlue:  {Text: WHITE, Accent: LIGHT_BLUE, Muted: GREY, Good: LIME, Bad: YELLOW},
	portal.ThemeGreen: {Text: WHITE, Accent: LIME, Muted: GREY, Good: LIME, Bad: YELLOW},
}

func paletteOf(t portal.Theme) palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[portal.DefaultTheme]
}

func (p palette) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
}

func (p palette) label() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Text)
}

func (p palette) help() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Muted)
}

func (p palette) input(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1).
		Width(36)
	if focused {
		s = s.BorderForeground(p.Accent)
	}
	return s
}

func (p palette) button(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Padding(0, 2).
		Margin(1, 0).
		Border(lipgloss.RoundedBorder())
	if focused {
		s = s.Foreground(WHITE).Background(p.Accent)
	}
	return s
}

func (p palette) tab(active bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1).Foreground(p.Muted)
	if active {
		s = s.Bold(true).Foreground(WHITE).Background(p.Accent)
	}
	return s
}

func (p palette) card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 2).
		MarginRight(1)
}

func (p palette) status(ok bool) lipgloss.Style {
	if ok {
		return lipgloss.NewStyle().Foreground(p.Good)
	}
	return lipgloss.NewStyle().Foreground(p.Bad)
}

func (p palette) tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Accent).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(WHITE).
		Background(p.Accent).
		Bold(true)
	return s
}
