package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-campus-assistant/models"
)

type emailState struct {
	status     *models.EmailStatus
	list       models.EmailList
	loaded     bool
	cursor     int
	searching  bool
	input      textinput.Model
	connectURL string
}

func newEmailState() emailState {
	input := textinput.New()
	input.Placeholder = "keyword"
	input.CharLimit = 256
	return emailState{input: input}
}

func (m appModel) updateEmail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.email.searching {
		switch {
		case key.Matches(msg, keys.esc):
			m.email.searching = false
			m.email.input.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			keyword := strings.TrimSpace(m.email.input.Value())
			m.email.searching = false
			m.email.input.Blur()
			if keyword == "" {
				return m, nil
			}
			return m, cmdSearchEmails(m.ctx, m.services.EmailService, keyword)
		}
		var cmd tea.Cmd
		m.email.input, cmd = m.email.input.Update(msg)
		return m, cmd
	}

	emails := m.email.list.Emails
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.email.cursor = clampCursor(m.email.cursor-1, len(emails))
	case key.Matches(msg, keys.down):
		m.email.cursor = clampCursor(m.email.cursor+1, len(emails))
	case key.Matches(msg, keys.reload):
		return m, cmdRecentEmails(m.ctx, m.services.EmailService)
	case key.Matches(msg, keys.stats):
		return m, cmdEmailStatus(m.ctx, m.services.EmailService)
	case key.Matches(msg, keys.connect):
		return m, cmdConnectEmail(m.ctx, m.services.AuthService, m.openURL)
	case key.Matches(msg, keys.search):
		m.email.searching = true
		m.email.input.Reset()
		return m, m.email.input.Focus()
	}
	return m, nil
}

func (m appModel) viewEmail(p *palette) string {
	var b strings.Builder

	switch s := m.email.status; {
	case s == nil:
		b.WriteString(p.muted.Render("Checking mailbox…"))
	case s.Connected:
		line := "Mailbox connected"
		if s.LastSync != nil {
			line += ", last sync " + formatTime(*s.LastSync)
		}
		b.WriteString(p.status.Render(line))
	default:
		b.WriteString(p.err.Render("Mailbox not connected.") + " Press c to grant access.")
	}
	b.WriteString("\n")
	if m.email.connectURL != "" {
		b.WriteString(p.muted.Render("Consent page: ") + p.source.Render(m.email.connectURL) + "\n")
	}
	b.WriteString("\n")

	if m.email.searching {
		b.WriteString(m.email.input.View() + "\n\n")
	}

	emails := m.email.list.Emails
	switch {
	case !m.email.loaded:
		return strings.TrimRight(b.String(), "\n")
	case len(emails) == 0:
		b.WriteString(p.muted.Render("No messages."))
		return b.String()
	}

	for i, e := range emails {
		flag := " "
		if e.IsAcademic {
			flag = "★"
		}
		line := fmt.Sprintf("%s %-24s %-48s %s", flag, fitText(senderName(e), 24), fitText(e.Subject, 48), formatTime(e.ReceivedAt))
		b.WriteString(listRow(p, line, i == m.email.cursor) + "\n")
	}

	if m.email.cursor < len(emails) {
		e := emails[m.email.cursor]
		b.WriteString("\n" + p.title.Render(e.Subject) + "\n")
		b.WriteString(p.muted.Render(fmt.Sprintf("From %s <%s>", senderName(e), e.SenderEmail)))
		if e.HasAttachments {
			b.WriteString(p.muted.Render(fmt.Sprintf(" • %d attachment(s)", e.AttachmentCount)))
		}
		b.WriteString("\n" + fitText(strings.Join(strings.Fields(e.BodyPreview), " "), 200))
	}
	return b.String()
}

func senderName(e models.EmailMessage) string {
	if e.Sender != "" {
		return e.Sender
	}
	return e.SenderEmail
}
