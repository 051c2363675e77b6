package ui

import (
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// ContactMessage is a submitted contact form.
type ContactMessage struct {
	ID      string
	Name    string
	Email   string
	Message string
}

// contactForm is the "Send a Message" form. Submissions are logged and not
// sent anywhere.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int

	errors    map[int]string
	submitted bool
	seq       int
}

// thanksDoneMsg ends the thank-you notice for submission seq.
type thanksDoneMsg struct{ seq int }

func newContactForm() contactForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Prompt = ""

	message := textarea.New()
	message.Placeholder = "Your message"
	message.ShowLineNumbers = false
	message.SetHeight(4)
	message.CharLimit = 2000

	f := contactForm{name: name, email: email, message: message}
	f.setFocus(fieldName)
	return f
}

func (f *contactForm) setWidth(w int) {
	w = max(w, 20)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

func (f *contactForm) setFocus(field int) {
	f.focus = (field%fieldCount + fieldCount) % fieldCount
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch f.focus {
	case fieldName:
		f.name.Focus()
	case fieldEmail:
		f.email.Focus()
	case fieldMessage:
		f.message.Focus()
	}
}

// validate applies the checks a browser form does: every field is required
// and the e-mail must parse as an address.
func (f *contactForm) validate() bool {
	f.errors = map[int]string{}
	if strings.TrimSpace(f.name.Value()) == "" {
		f.errors[fieldName] = "Please fill out this field."
	}
	email := strings.TrimSpace(f.email.Value())
	switch {
	case email == "":
		f.errors[fieldEmail] = "Please fill out this field."
	case !validEmail(email):
		f.errors[fieldEmail] = "Please enter an email address."
	}
	if strings.TrimSpace(f.message.Value()) == "" {
		f.errors[fieldMessage] = "Please fill out this field."
	}
	if len(f.errors) > 0 {
		for field := fieldName; field < fieldCount; field++ {
			if _, bad := f.errors[field]; bad {
				f.setFocus(field)
				break
			}
		}
		return false
	}
	return true
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// submit validates, logs the message, and starts the thank-you timer.
func (f *contactForm) submit(logger *zap.Logger) (ContactMessage, tea.Cmd, bool) {
	if f.submitted || !f.validate() {
		return ContactMessage{}, nil, false
	}
	msg := ContactMessage{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(f.name.Value()),
		Email:   strings.TrimSpace(f.email.Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
	logger.Info("contact form submitted",
		zap.String("id", msg.ID),
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.Int("message_length", len(msg.Message)),
	)

	f.submitted = true
	f.seq++
	seq := f.seq
	return msg, tea.Tick(ThanksDuration, func(time.Time) tea.Msg {
		return thanksDoneMsg{seq: seq}
	}), true
}

// reset clears the form after the thank-you notice.
func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.errors = nil
	f.submitted = false
	f.setFocus(fieldName)
}

func (f contactForm) update(msg tea.Msg) (contactForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	if f.errors != nil {
		delete(f.errors, f.focus)
	}
	return f, cmd
}

// handleContactKey routes keys while the contact form is open.
func (m Model) handleContactKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, m.quit()
	case key.Matches(msg, m.keys.Escape):
		m.showContact = false
		return m, nil
	case m.contact.submitted:
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.contact.setFocus(m.contact.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.contact.setFocus(m.contact.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Confirm) && m.contact.focus != fieldMessage:
		m.contact.setFocus(m.contact.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		sent, cmd, ok := m.contact.submit(m.logger)
		if ok {
			m.lastContact = sent
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.contact, cmd = m.contact.update(msg)
	return m, cmd
}

// renderContact renders the contact form modal.
func (m Model) renderContact() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Text.Bold(true).Render("Send a Message"))
	b.WriteString("\n")
	b.WriteString(s.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	if m.contact.submitted {
		b.WriteString(s.SuccessText.Render("Thank you! I'll get back to you soon."))
		b.WriteString("\n")
		return m.placeModal(b.String(), 56)
	}

	field := func(idx int, label, view string) {
		labelStyle := s.MutedText
		if m.contact.focus == idx {
			labelStyle = s.AccentText.Bold(true)
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(view)
		b.WriteString("\n")
		if e, ok := m.contact.errors[idx]; ok {
			b.WriteString(s.DangerText.Render(e))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	field(fieldName, "Name", m.contact.name.View())
	field(fieldEmail, "Email", m.contact.email.View())
	field(fieldMessage, "Message", m.contact.message.View())

	b.WriteString(s.FaintText.Render("tab next · ctrl+s send · esc close"))
	return m.placeModal(b.String(), 56)
}
