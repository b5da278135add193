package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/termfolio/internal/model"
	"github.com/verte-zerg/termfolio/internal/notify"
	"github.com/verte-zerg/termfolio/internal/projects"
)

const terminalWidth = 64

type pageBlock struct {
	id   string
	body string
}

// buildPage renders every section and records the row span of each.
func (m *Model) buildPage(width int) (string, map[string]span) {
	blocks := []pageBlock{
		{id: SectionHome, body: m.renderHome(width)},
		{id: SectionSkills, body: m.renderSkills(width)},
		{id: SectionProjects, body: m.renderProjects(width)},
		{id: SectionExperience, body: m.renderExperience(width)},
		{id: SectionContact, body: m.renderContact(width)},
	}
	spans := make(map[string]span, len(blocks))
	var lines []string
	for _, b := range blocks {
		blockLines := strings.Split(b.body, "\n")
		spans[b.id] = span{start: len(lines), end: len(lines) + len(blockLines) - 1}
		lines = append(lines, blockLines...)
	}
	return padLines(strings.Join(lines, "\n"), width), spans
}

func (m *Model) renderHome(width int) string {
	st := m.styles
	p := m.content.Profile
	var out []string

	boxWidth := minInt(width, terminalWidth)
	inner := maxInt(1, boxWidth-4)
	term := []string{st.muted.Render("~/portfolio")}
	for _, line := range m.typer.Lines() {
		term = append(term, wrapText(line, inner)...)
	}
	out = append(out, st.terminal.Width(boxWidth-2).Render(strings.Join(term, "\n")), "")

	name := st.title.Render(p.Name)
	if p.Location != "" {
		name += st.muted.Render(" · " + p.Location)
	}
	out = append(out, name)
	if p.Title != "" {
		out = append(out, st.accent.Render(p.Title))
	}
	if len(p.Headline) > 0 {
		out = append(out, "")
		for _, line := range wrapText(strings.Join(p.Headline, " "), width) {
			out = append(out, st.title.Render(line))
		}
	}
	if p.Intro != "" {
		out = append(out, "")
		out = append(out, styleLines(st.text, wrapText(p.Intro, width))...)
	}
	if len(p.QuickStats) > 0 {
		cards := make([]string, 0, len(p.QuickStats))
		for _, qs := range p.QuickStats {
			cards = append(cards, st.card.Render(st.muted.Render(qs.Label)+"\n"+st.title.Render(qs.Value)))
		}
		out = append(out, "", joinCards(cards, width))
	}
	if len(p.Links) > 0 {
		out = append(out, "")
		for _, l := range p.Links {
			out = append(out, st.muted.Render(l.Label+": ")+st.accent.Render(l.URL))
		}
	}
	out = append(out, "", st.text.Render(fmt.Sprintf("Coffee fuel: %d %s", m.coffee, plural(m.coffee, "cup", "cups")))+st.muted.Render("  (+ to buy one)"))
	return strings.Join(out, "\n")
}

func (m *Model) renderSkills(width int) string {
	st := m.styles
	out := []string{st.heading.Render("Skills")}
	for _, s := range m.content.Skills {
		out = append(out, st.accent.Render("▸ ")+st.title.Render(s.Label)+st.muted.Render(" · "+s.Desc))
	}
	if len(m.content.TechStack) > 0 {
		out = append(out, "", st.muted.Render("Tech stack"))
		out = append(out, styleLines(st.text, wrapText(strings.Join(m.content.TechStack, "  "), width))...)
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderProjects(width int) string {
	st := m.styles
	out := []string{st.heading.Render("Projects"), m.renderCategoryTabs(width)}
	records := projects.Filter(m.category, m.content.Projects)
	if len(records) == 0 {
		out = append(out, st.muted.Render("No projects in this category."))
		return strings.Join(out, "\n")
	}
	cardWidth := maxInt(10, width-2)
	inner := maxInt(1, cardWidth-4)
	for _, r := range records {
		status := st.success
		if r.Status == model.StatusInProgress {
			status = st.accent
		}
		body := []string{
			st.title.Render(r.Title) + st.muted.Render(" ("+r.Year+")  ") + status.Render(string(r.Status)),
			st.muted.Render(r.Category),
		}
		body = append(body, styleLines(st.text, wrapText(r.Description, inner))...)
		if len(r.Stack) > 0 {
			body = append(body, styleLines(st.accent, wrapText(strings.Join(r.Stack, " · "), inner))...)
		}
		for _, link := range projectLinks(r.Links) {
			body = append(body, st.muted.Render(link))
		}
		out = append(out, st.card.Width(cardWidth).Render(strings.Join(body, "\n")))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderCategoryTabs(width int) string {
	parts := make([]string, 0, len(m.categories))
	for _, c := range m.categories {
		if c == m.category {
			parts = append(parts, m.styles.activeTab.Render(c))
		} else {
			parts = append(parts, m.styles.inactiveTab.Render(c))
		}
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return tabs + "\n" + m.styles.muted.Render(truncate("[ / ] to switch category", width))
}

func (m *Model) renderExperience(width int) string {
	st := m.styles
	out := []string{st.heading.Render("Experience")}
	for _, e := range m.content.Experience {
		out = append(out, st.title.Render(e.Role)+st.muted.Render(" @ ")+st.accent.Render(e.Company))
		out = append(out, st.muted.Render(e.Date))
		out = append(out, styleLines(st.text, wrapText(e.Details, width))...)
		if len(e.Tech) > 0 {
			out = append(out, styleLines(st.accent, wrapText(strings.Join(e.Tech, " · "), width))...)
		}
		out = append(out, "")
	}
	if len(m.content.Education) > 0 {
		out = append(out, st.muted.Render("Education"))
		for _, e := range m.content.Education {
			out = append(out, st.title.Render(e.Degree))
			meta := e.Institution
			if e.Period != "" {
				meta += " · " + e.Period
			}
			if e.Location != "" {
				meta += " · " + e.Location
			}
			out = append(out, styleLines(st.muted, wrapText(meta, width))...)
		}
	}
	if len(m.content.Certifications) > 0 {
		out = append(out, "", st.muted.Render("Certifications"))
		for _, c := range m.content.Certifications {
			out = append(out, st.title.Render(c.Title)+st.muted.Render(" · "+c.Issuer+" · "+c.Year))
		}
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

func (m *Model) renderContact(width int) string {
	st := m.styles
	out := []string{st.heading.Render("Contact")}
	if m.content.Profile.Pitch != "" {
		out = append(out, styleLines(st.text, wrapText(m.content.Profile.Pitch, width))...)
	}
	if m.content.Profile.Email != "" {
		out = append(out, "", st.muted.Render("Email: ")+st.accent.Render(m.content.Profile.Email))
	}
	out = append(out, "", st.accent.Render("["+m.submitter.Label()+"]")+st.muted.Render("  press c to write a message"))
	return strings.Join(out, "\n")
}

// renderNav draws the header and records where each item sits for clicks.
func (m *Model) renderNav() string {
	active := m.tracker.Active()
	m.navHits = m.navHits[:0]
	var b strings.Builder
	x := 0
	for i, id := range sectionOrder {
		label := fmt.Sprintf("%d %s", i+1, sectionLabels[id])
		style := m.styles.inactiveNav
		if id == active {
			style = m.styles.activeNav
		}
		rendered := style.Render(label)
		w := lipgloss.Width(rendered)
		m.navHits = append(m.navHits, navHit{id: id, start: x, end: x + w})
		b.WriteString(rendered)
		x += w
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	help := "↑/↓ scroll  1-5 jump  [ ] category  c contact  + coffee  d theme  r replay  q quit"
	if m.tracker.PastThreshold() {
		help = "t top  " + help
	}
	lines := []string{m.styles.muted.Render(truncate(help, m.width))}
	if n, ok := m.notices.Current(); ok {
		style := m.styles.success
		if n.Kind == notify.KindError {
			style = m.styles.failure
		}
		lines = append(lines, style.Render(truncate(n.Text, m.width)))
	}
	return strings.Join(lines, "\n")
}

func projectLinks(links model.ProjectLinks) []string {
	var out []string
	if links.Code != "" && links.Code != "#" {
		out = append(out, "code: "+links.Code)
	}
	if links.Live != "" && links.Live != "#" {
		out = append(out, "live: "+links.Live)
	}
	return out
}

func joinCards(cards []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range cards {
		w := lipgloss.Width(c)
		if rowWidth+w > width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, c)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func styleLines(style lipgloss.Style, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = style.Render(line)
	}
	return out
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
