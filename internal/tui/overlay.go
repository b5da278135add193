package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderSpotlight draws the intro gate. Cells inside the spotlight radius are
// lit; everything else is dimmed.
func (m *Model) renderSpotlight() string {
	lines := m.introLines()
	top := (m.height - len(lines)) / 2
	if top < 0 {
		top = 0
	}

	rows := make([]string, 0, m.height)
	for y := 0; y < m.height; y++ {
		var text []rune
		if idx := y - top; idx >= 0 && idx < len(lines) {
			text = []rune(centerText(lines[idx], m.width))
		}
		rows = append(rows, m.renderOverlayRow(text, y))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) introLines() []string {
	p := m.content.Profile
	lines := []string{p.Name}
	if p.Title != "" {
		lines = append(lines, p.Title)
	}
	lines = append(lines, "", "move the mouse to look around", "click or press enter to come in")
	return lines
}

// renderOverlayRow styles runs of lit and unlit cells in one row.
func (m *Model) renderOverlayRow(text []rune, y int) string {
	var b strings.Builder
	var run strings.Builder
	runLit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runLit {
			b.WriteString(m.styles.lit.Render(run.String()))
		} else {
			b.WriteString(m.styles.dark.Render(run.String()))
		}
		run.Reset()
	}

	x := 0
	i := 0
	for x < m.width {
		r := ' '
		if i < len(text) {
			r = text[i]
			i++
		}
		w := runewidth.RuneWidth(r)
		if w < 1 {
			continue
		}
		if x+w > m.width {
			break
		}
		lit := m.gate.Lit(x, y)
		if lit != runLit {
			flush()
			runLit = lit
		}
		run.WriteRune(r)
		x += w
	}
	flush()
	return b.String()
}

func centerText(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
