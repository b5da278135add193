package tui

import "github.com/charmbracelet/lipgloss"

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	faint   lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	success lipgloss.Color
	failure lipgloss.Color
}

var palettes = map[string]palette{
	ThemeDark: {
		text:    lipgloss.Color("#F0F0F0"),
		muted:   lipgloss.Color("#8C8C8C"),
		faint:   lipgloss.Color("#4A4A4A"),
		accent:  lipgloss.Color("#C89A3A"),
		border:  lipgloss.Color("#4A4A4A"),
		success: lipgloss.Color("#52C41A"),
		failure: lipgloss.Color("#FF4D4F"),
	},
	ThemeLight: {
		text:    lipgloss.Color("#1F1F1F"),
		muted:   lipgloss.Color("#595959"),
		faint:   lipgloss.Color("#BFBFBF"),
		accent:  lipgloss.Color("#AD6800"),
		border:  lipgloss.Color("#D9D9D9"),
		success: lipgloss.Color("#237804"),
		failure: lipgloss.Color("#CF1322"),
	},
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	_, ok := palettes[name]
	return ok
}

type styles struct {
	text        lipgloss.Style
	muted       lipgloss.Style
	accent      lipgloss.Style
	title       lipgloss.Style
	heading     lipgloss.Style
	activeNav   lipgloss.Style
	inactiveNav lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	terminal    lipgloss.Style
	card        lipgloss.Style
	modal       lipgloss.Style
	success     lipgloss.Style
	failure     lipgloss.Style
	lit         lipgloss.Style
	dark        lipgloss.Style
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[ThemeDark]
	}
	return styles{
		text:   lipgloss.NewStyle().Foreground(p.text),
		muted:  lipgloss.NewStyle().Foreground(p.muted),
		accent: lipgloss.NewStyle().Foreground(p.accent),
		title:  lipgloss.NewStyle().Foreground(p.text).Bold(true),
		heading: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			MarginTop(1),
		activeNav: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		inactiveNav: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		activeTab: lipgloss.NewStyle().
			Foreground(p.text).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.accent),
		inactiveTab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		terminal: lipgloss.NewStyle().
			Foreground(p.success).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.accent).
			Padding(1, 2),
		success: lipgloss.NewStyle().Foreground(p.success).Bold(true),
		failure: lipgloss.NewStyle().Foreground(p.failure).Bold(true),
		lit:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		dark:    lipgloss.NewStyle().Foreground(p.faint),
	}
}
