package tui

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/termfolio/internal/contact"
	"github.com/verte-zerg/termfolio/internal/model"
	"github.com/verte-zerg/termfolio/internal/notify"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

func (m *Model) initInputs() {
	m.nameInput = newFormInput("Name:  ", "Your name")
	m.mailInput = newFormInput("Email: ", "you@example.com")
	m.bodyInput = textarea.New()
	m.bodyInput.Placeholder = "Your message"
	m.bodyInput.ShowLineNumbers = false
	m.bodyInput.CharLimit = 0
	m.bodyInput.SetHeight(6)
}

func newFormInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) openForm() tea.Cmd {
	m.formMode = true
	m.formError = ""
	form := m.submitter.Form()
	m.nameInput.SetValue(form.Name)
	m.mailInput.SetValue(form.Email)
	m.bodyInput.SetValue(form.Message)
	return m.setFormIndex(fieldName)
}

// closeForm hides the modal. Field values stay on the submitter.
func (m *Model) closeForm() {
	m.syncForm()
	m.formMode = false
	m.formError = ""
	m.nameInput.Blur()
	m.mailInput.Blur()
	m.bodyInput.Blur()
}

func (m *Model) syncForm() {
	if m.submitter.InFlight() {
		return
	}
	m.submitter.SetForm(model.ContactForm{
		Name:    m.nameInput.Value(),
		Email:   m.mailInput.Value(),
		Message: m.bodyInput.Value(),
	})
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return nil
	case tea.KeyCtrlS:
		return m.submit()
	case tea.KeyTab:
		return m.setFormIndex(m.formIndex + 1)
	case tea.KeyShiftTab:
		return m.setFormIndex(m.formIndex - 1)
	case tea.KeyEnter:
		if m.formIndex != fieldMessage {
			return m.setFormIndex(m.formIndex + 1)
		}
	}
	if m.submitter.InFlight() {
		return nil
	}
	var cmd tea.Cmd
	switch m.formIndex {
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case fieldEmail:
		m.mailInput, cmd = m.mailInput.Update(msg)
	default:
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return cmd
}

func (m *Model) setFormIndex(idx int) tea.Cmd {
	if idx < 0 {
		idx = fieldCount - 1
	}
	if idx >= fieldCount {
		idx = 0
	}
	m.formIndex = idx
	m.nameInput.Blur()
	m.mailInput.Blur()
	m.bodyInput.Blur()
	switch idx {
	case fieldName:
		return m.nameInput.Focus()
	case fieldEmail:
		return m.mailInput.Focus()
	default:
		return m.bodyInput.Focus()
	}
}

// submit validates and starts the asynchronous send. At most one submission
// is outstanding.
func (m *Model) submit() tea.Cmd {
	m.syncForm()
	form, err := m.submitter.Begin()
	if err != nil {
		if errors.Is(err, contact.ErrInFlight) {
			return nil
		}
		m.formError = err.Error()
		return nil
	}
	m.formError = ""
	m.refreshPage()
	ctx := m.ctx
	submitter := m.submitter
	return func() tea.Msg {
		return submitResultMsg{form: form, err: submitter.Send(ctx, form)}
	}
}

func (m *Model) finishSubmit(msg submitResultMsg) tea.Cmd {
	res := m.submitter.Finish(msg.err)
	m.recordAttempt(msg.form, res)
	if res.Outcome == contact.OutcomeSent {
		m.nameInput.SetValue("")
		m.mailInput.SetValue("")
		m.bodyInput.SetValue("")
		if m.formMode {
			m.closeForm()
		}
		m.refreshPage()
		return m.showNotice(notify.KindSuccess, noticeSent)
	}
	log.Printf("contact submission failed: %v", res.Err)
	m.refreshPage()
	if errors.Is(res.Err, contact.ErrMissingAccessKey) {
		return m.showNotice(notify.KindError, noticeNotConfigured)
	}
	return m.showNotice(notify.KindError, noticeFailed)
}

func (m *Model) recordAttempt(form model.ContactForm, res contact.Result) {
	if m.store == nil {
		return
	}
	entry := model.OutboxEntry{
		CreatedAt: time.Now(),
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Delivered: res.Outcome == contact.OutcomeSent,
	}
	if res.Err != nil {
		entry.Error = res.Err.Error()
	}
	if _, err := m.store.RecordMessage(m.ctx, entry); err != nil {
		log.Printf("failed to record message: %v", err)
	}
}

func (m *Model) renderForm() string {
	st := m.styles
	body := []string{
		st.title.Render("Get In Touch"),
		"",
		m.nameInput.View(),
		m.mailInput.View(),
		"",
		m.bodyInput.View(),
		"",
		st.accent.Render("[" + m.submitter.Label() + "]"),
		st.muted.Render("tab/shift+tab: next field  ctrl+s: send  esc: close"),
	}
	if m.formError != "" {
		body = append(body, st.failure.Render(m.formError))
	}
	if n, ok := m.notices.Current(); ok {
		style := st.success
		if n.Kind == notify.KindError {
			style = st.failure
		}
		body = append(body, style.Render(n.Text))
	}
	box := st.modal.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}
