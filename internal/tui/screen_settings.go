package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-campus-assistant/models"
)

type settingsState struct {
	health    *models.Health
	info      *models.ServiceInfo
	showBuild bool
}

func (m appModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.theme):
		m.store.ToggleTheme()
		m.snap = m.store.Snapshot()
		m.chat.rendered = ""
		m.syncChat()
	case key.Matches(msg, keys.health):
		return m, cmdSystemInfo(m.ctx, m.services.SystemService, true)
	case key.Matches(msg, keys.buildInfo):
		m.settings.showBuild = !m.settings.showBuild
	case key.Matches(msg, keys.logout):
		m.confirm = &confirmPrompt{
			text:  "Sign out of the campus assistant?",
			onYes: cmdLogout(m.ctx, m.services.AuthService),
		}
	}
	return m, nil
}

func (m appModel) viewSettings(p *palette) string {
	var b strings.Builder

	b.WriteString(p.title.Render("Account") + "\n")
	if u := m.snap.User; u != nil {
		b.WriteString(kv(p, "Name", u.Name))
		b.WriteString(kv(p, "Email", u.Email))
		mailbox := "not connected"
		if u.EmailConnected {
			mailbox = "connected"
		}
		b.WriteString(kv(p, "Mailbox", mailbox))
	}

	b.WriteString("\n" + p.title.Render("Appearance") + "\n")
	b.WriteString(kv(p, "Theme", string(m.snap.Theme)))

	b.WriteString("\n" + p.title.Render("Server") + "\n")
	if m.settings.health == nil {
		b.WriteString(p.muted.Render("unknown") + "\n")
	} else {
		status := p.err.Render(m.settings.health.Status)
		if m.settings.health.Healthy() {
			status = p.status.Render(m.settings.health.Status)
		}
		b.WriteString(kv(p, "Status", status))
		b.WriteString(kv(p, "Checked", formatTime(m.settings.health.Timestamp)))
	}
	if info := m.settings.info; info != nil {
		b.WriteString(kv(p, "Service", fmt.Sprintf("%s %s", info.Service, info.Version)))
	}

	if m.settings.showBuild {
		b.WriteString("\n" + p.title.Render("Build") + "\n")
		b.WriteString(kv(p, "Version", orNA(m.buildInfo.BuildVersion())))
		b.WriteString(kv(p, "Date", orNA(m.buildInfo.BuildDate())))
		b.WriteString(kv(p, "Commit", orNA(m.buildInfo.BuildCommit())))
	}
	return strings.TrimRight(b.String(), "\n")
}

func kv(p *palette, k, v string) string {
	return p.muted.Render(fmt.Sprintf("  %-8s", k)) + " " + v + "\n"
}
