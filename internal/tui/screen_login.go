package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginState struct {
	url      string
	info     string
	busy     bool
	entering bool
	code     textinput.Model
}

func newLoginState() loginState {
	code := textinput.New()
	code.Placeholder = "authorization code"
	code.CharLimit = 2048
	return loginState{code: code}
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.entering {
		switch {
		case key.Matches(msg, keys.esc):
			m.login.entering = false
			m.login.code.Blur()
			m.login.code.Reset()
			return m, nil
		case key.Matches(msg, keys.enter):
			code := strings.TrimSpace(m.login.code.Value())
			if code == "" {
				return m, nil
			}
			m.login.entering = false
			m.login.code.Blur()
			m.login.code.Reset()
			m.login.busy = true
			return m, cmdExchangeCode(m.ctx, m.services.AuthService, code)
		}
		var cmd tea.Cmd
		m.login.code, cmd = m.login.code.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		if m.login.url != "" {
			return m, cmdCopy(m.login.url, "Sign-in link")
		}
	case m.login.busy && m.login.url == "":
		return m, nil
	case key.Matches(msg, keys.enter):
		m.login.busy = true
		m.login.info = "Opening the university sign-in page…"
		return m, cmdBeginLogin(m.ctx, m.oauth)
	case key.Matches(msg, keys.enterCode):
		m.login.entering = true
		return m, m.login.code.Focus()
	case key.Matches(msg, keys.devLogin) && m.devLogin:
		m.login.busy = true
		return m, cmdDevLogin(m.ctx, m.services.AuthService)
	}
	return m, nil
}

func (m appModel) viewLogin(p *palette) string {
	var b strings.Builder
	b.WriteString(p.title.Render("Campus Assistant"))
	b.WriteString("\n")
	b.WriteString(p.muted.Render("Ask about courses, deadlines, campus services and your university mail."))
	b.WriteString("\n\n")

	if m.login.info != "" {
		b.WriteString(m.login.info)
		b.WriteString("\n")
	}
	if m.login.url != "" {
		b.WriteString("\nIf the browser did not open, visit:\n")
		b.WriteString(p.source.Render(m.login.url))
		b.WriteString("\n")
	}
	if m.login.busy && m.login.url == "" {
		b.WriteString("\n" + m.spinner.View() + " Signing in…\n")
	}
	if m.login.entering {
		b.WriteString("\nPaste the code from the redirect page:\n")
		b.WriteString(m.login.code.View())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
