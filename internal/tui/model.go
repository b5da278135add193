// Package tui provides the Bubble Tea portfolio interface.
package tui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/termfolio/internal/contact"
	"github.com/verte-zerg/termfolio/internal/content"
	"github.com/verte-zerg/termfolio/internal/model"
	"github.com/verte-zerg/termfolio/internal/notify"
	"github.com/verte-zerg/termfolio/internal/projects"
	"github.com/verte-zerg/termfolio/internal/sections"
	"github.com/verte-zerg/termfolio/internal/spotlight"
	"github.com/verte-zerg/termfolio/internal/store"
	"github.com/verte-zerg/termfolio/internal/typewriter"
)

// Section ids in page order.
const (
	SectionHome       = "home"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionExperience = "experience"
	SectionContact    = "contact"
)

var sectionOrder = []string{SectionHome, SectionSkills, SectionProjects, SectionExperience, SectionContact}

var sectionLabels = map[string]string{
	SectionHome:       "Home",
	SectionSkills:     "Skills",
	SectionProjects:   "Projects",
	SectionExperience: "Experience",
	SectionContact:    "Contact",
}

// Notice texts.
const (
	noticeSent          = "Message sent successfully!"
	noticeFailed        = "Something went wrong. Please try again."
	noticeNotConfigured = "Contact form is not configured."
)

const (
	// DefaultSectionThreshold is the viewport row used to pick the active section.
	DefaultSectionThreshold = 4
	// DefaultTopThreshold is the scroll offset past which back-to-top is offered.
	DefaultTopThreshold = 20

	maxPageWidth = 100
	headerHeight = 1
	footerHeight = 2
	wheelStep    = 3
)

// Store persists outbox entries and counters.
type Store interface {
	RecordMessage(ctx context.Context, entry model.OutboxEntry) (string, error)
	IncrementCounter(ctx context.Context, name string) (int64, error)
	Counter(ctx context.Context, name string) (int64, error)
}

// Options configures a Model.
type Options struct {
	Content          content.Content
	Submitter        *contact.Submitter
	Store            Store
	Theme            string
	Intro            bool
	CharDelay        time.Duration
	LinePause        time.Duration
	NoticeTTL        time.Duration
	SectionThreshold int
	TopThreshold     int
}

type typewriterTickMsg struct {
	tick typewriter.Tick
}

type noticeExpireMsg struct {
	id uint64
	at time.Time
}

type submitResultMsg struct {
	form model.ContactForm
	err  error
}

type coffeeMsg struct {
	count int64
	err   error
}

type span struct {
	start int
	end   int
}

type navHit struct {
	id    string
	start int
	end   int
}

// Model implements the Bubble Tea portfolio UI. All state is scoped to one
// program instance.
type Model struct {
	content    content.Content
	categories []string
	store      Store
	submitter  *contact.Submitter

	ctx    context.Context
	cancel context.CancelFunc

	theme  string
	styles styles

	gate    *spotlight.Gate
	typer   *typewriter.Animator
	tracker *sections.Tracker
	notices *notify.Center

	category string
	coffee   int64

	vp      viewport.Model
	spans   map[string]span
	navHits []navHit

	width  int
	height int

	formMode  bool
	formIndex int
	nameInput textinput.Model
	mailInput textinput.Model
	bodyInput textarea.Model
	formError string
}

// NewModel constructs a portfolio TUI model.
func NewModel(opts Options) (*Model, error) {
	charDelay := opts.CharDelay
	if charDelay <= 0 {
		charDelay = typewriter.DefaultCharDelay
	}
	linePause := opts.LinePause
	if linePause <= 0 {
		linePause = typewriter.DefaultLinePause
	}
	typer, err := typewriter.New(opts.Content.Script, typewriter.Options{CharDelay: charDelay, LinePause: linePause})
	if err != nil {
		return nil, err
	}
	theme := opts.Theme
	if !ValidTheme(theme) {
		theme = ThemeDark
	}
	threshold := opts.SectionThreshold
	if threshold <= 0 {
		threshold = DefaultSectionThreshold
	}
	topThreshold := opts.TopThreshold
	if topThreshold <= 0 {
		topThreshold = DefaultTopThreshold
	}
	submitter := opts.Submitter
	if submitter == nil {
		submitter = contact.NewSubmitter(nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		content:    opts.Content,
		categories: opts.Content.Categories(),
		store:      opts.Store,
		submitter:  submitter,
		ctx:        ctx,
		cancel:     cancel,
		theme:      theme,
		styles:     newStyles(theme),
		gate:       spotlight.New(spotlight.DefaultRadius),
		typer:      typer,
		notices:    notify.NewCenter(opts.NoticeTTL, nil),
		category:   model.CategoryAll,
		vp:         viewport.New(0, 0),
		spans:      map[string]span{},
	}
	secs := make([]sections.Section, 0, len(sectionOrder))
	for _, id := range sectionOrder {
		secs = append(secs, sections.Section{ID: id, Bounds: m.boundsFor(id)})
	}
	m.tracker = sections.NewTracker(secs, sections.Options{
		Threshold:    threshold,
		TopThreshold: topThreshold,
		Default:      SectionHome,
	})
	m.initInputs()
	if !opts.Intro {
		m.gate.Dismiss()
		m.typer.Begin()
	}
	m.loadCoffee()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.scheduleTypewriter()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case typewriterTickMsg:
		if !m.typer.Handle(msg.tick) {
			return m, nil
		}
		m.refreshPage()
		return m, m.scheduleTypewriter()
	case noticeExpireMsg:
		if !m.notices.Expire(msg.id) {
			m.notices.Sweep(msg.at)
		}
		return m, nil
	case submitResultMsg:
		return m, m.finishSubmit(msg)
	case coffeeMsg:
		if msg.err != nil {
			log.Printf("failed to update coffee counter: %v", msg.err)
			return m, nil
		}
		m.coffee = msg.count
		m.refreshPage()
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		if m.gate.Visible() {
			return m, m.handleGateKey(msg)
		}
		if m.formMode {
			return m, m.updateForm(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.gate.Visible() {
		return m.renderSpotlight()
	}
	if m.formMode {
		return fitLines(m.renderForm(), m.width, m.height)
	}
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	header := fitLines(m.renderNav(), m.width, headerHeight)
	body := fitLines(m.vp.View(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

// Close cancels any in-flight work and stops the animation.
func (m *Model) Close() {
	log.Printf("session closed: %d pointer moves, %d section changes", m.gate.Moves(), m.tracker.Changes())
	m.typer.Stop()
	m.cancel()
}

func (m *Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

func (m *Model) boundsFor(id string) sections.BoundsFunc {
	return func() (sections.Rect, bool) {
		sp, ok := m.spans[id]
		if !ok {
			return sections.Rect{}, false
		}
		off := m.vp.YOffset
		return sections.Rect{Top: sp.start - off, Bottom: sp.end - off}, true
	}
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.vp.Width = m.width
	m.vp.Height = bodyHeight
	inner := modalInnerWidth(m.width)
	m.nameInput.Width = maxInt(10, inner-lipgloss.Width(m.nameInput.Prompt))
	m.mailInput.Width = maxInt(10, inner-lipgloss.Width(m.mailInput.Prompt))
	m.bodyInput.SetWidth(inner)
	m.refreshPage()
}

// refreshPage re-renders the scrollable page and re-measures sections.
func (m *Model) refreshPage() {
	if m.width <= 0 {
		return
	}
	page, spans := m.buildPage(pageWidth(m.width))
	m.spans = spans
	m.vp.SetContent(page)
	m.tracker.OnScroll(m.vp.YOffset)
}

func (m *Model) scrolled() {
	m.tracker.OnScroll(m.vp.YOffset)
}

func (m *Model) scheduleTypewriter() tea.Cmd {
	delay := m.typer.NextDelay()
	if delay <= 0 {
		return nil
	}
	tick := typewriter.Tick{Gen: m.typer.Gen()}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return typewriterTickMsg{tick: tick}
	})
}

func (m *Model) handleGateKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return m.quit()
	case "enter", " ":
		return m.dismissGate()
	}
	return nil
}

func (m *Model) dismissGate() tea.Cmd {
	if !m.gate.Dismiss() {
		return nil
	}
	m.typer.Begin()
	m.refreshPage()
	// Drop bare motion reports; wheel and clicks still arrive.
	return tea.Batch(m.scheduleTypewriter(), tea.EnableMouseCellMotion)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.gate.Visible() {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.gate.Move(msg.X, msg.Y)
		case tea.MouseActionPress:
			return m.dismissGate()
		}
		return nil
	}
	if m.formMode || msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.LineUp(wheelStep)
		m.scrolled()
	case tea.MouseButtonWheelDown:
		m.vp.LineDown(wheelStep)
		m.scrolled()
	case tea.MouseButtonLeft:
		if msg.Y < headerHeight {
			for _, hit := range m.navHits {
				if msg.X >= hit.start && msg.X < hit.end {
					m.jumpTo(hit.id)
					break
				}
			}
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return m.quit()
	case "up", "k":
		m.vp.LineUp(1)
	case "down", "j":
		m.vp.LineDown(1)
	case "pgup", "b":
		m.vp.ViewUp()
	case "pgdown", " ":
		m.vp.ViewDown()
	case "g", "home":
		m.vp.GotoTop()
	case "G", "end":
		m.vp.GotoBottom()
	case "t":
		if !m.tracker.PastThreshold() {
			return nil
		}
		m.vp.GotoTop()
	case "1", "2", "3", "4", "5":
		idx := int(msg.Runes[0] - '1')
		if idx < len(sectionOrder) {
			m.jumpTo(sectionOrder[idx])
		}
		return nil
	case "]":
		m.setCategory(1)
		return nil
	case "[":
		m.setCategory(-1)
		return nil
	case "c":
		return m.openForm()
	case "+":
		return m.brewCoffee()
	case "d":
		m.toggleTheme()
		return nil
	case "r":
		m.typer.Restart()
		m.refreshPage()
		return m.scheduleTypewriter()
	case "x":
		m.notices.Dismiss()
		return nil
	default:
		return nil
	}
	m.scrolled()
	return nil
}

func (m *Model) jumpTo(id string) {
	sp, ok := m.spans[id]
	if !ok {
		return
	}
	m.vp.SetYOffset(sp.start)
	m.scrolled()
}

func (m *Model) setCategory(delta int) {
	m.category = projects.NextCategory(m.categories, m.category, delta)
	m.refreshPage()
}

func (m *Model) toggleTheme() {
	if m.theme == ThemeDark {
		m.theme = ThemeLight
	} else {
		m.theme = ThemeDark
	}
	m.styles = newStyles(m.theme)
	m.refreshPage()
}

func (m *Model) loadCoffee() {
	if m.store == nil {
		return
	}
	count, err := m.store.Counter(m.ctx, store.CounterCoffee)
	if err != nil {
		log.Printf("failed to load coffee counter: %v", err)
		return
	}
	m.coffee = count
}

func (m *Model) brewCoffee() tea.Cmd {
	if m.store == nil {
		m.coffee++
		m.refreshPage()
		return nil
	}
	ctx := m.ctx
	st := m.store
	return func() tea.Msg {
		count, err := st.IncrementCounter(ctx, store.CounterCoffee)
		return coffeeMsg{count: count, err: err}
	}
}

func (m *Model) showNotice(kind notify.Kind, text string) tea.Cmd {
	n := m.notices.Show(kind, text)
	return tea.Tick(m.notices.TTL(), func(at time.Time) tea.Msg {
		return noticeExpireMsg{id: n.ID, at: at}
	})
}

func pageWidth(width int) int {
	w := width - 4
	if w > maxPageWidth {
		w = maxPageWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
