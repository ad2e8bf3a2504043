package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-campus-assistant/internal/service"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/models"
)

type screen int

const (
	screenLogin screen = iota
	screenChat
	screenHistory
	screenKnowledge
	screenEmail
	screenSettings
)

// pages are the tabs of a signed-in session in display order.
var pages = []screen{screenChat, screenHistory, screenKnowledge, screenEmail, screenSettings}

func (s screen) title() string {
	switch s {
	case screenLogin:
		return "Sign in"
	case screenChat:
		return "Chat"
	case screenHistory:
		return "History"
	case screenKnowledge:
		return "Knowledge base"
	case screenEmail:
		return "Email"
	case screenSettings:
		return "Settings"
	}
	return ""
}

type deps struct {
	ctx       context.Context
	services  *service.ClientServices
	store     *state.Store
	oauth     *oauthFlow
	theme     *themeHolder
	openURL   func(string) error
	buildInfo models.AppBuildInfo
	devLogin  bool
}

// confirmPrompt is a yes/no question shown over the current page.
type confirmPrompt struct {
	text  string
	onYes tea.Cmd
}

type appModel struct {
	deps

	screen screen
	width  int
	height int

	// snap is the store snapshot the current frame is rendered from.
	snap state.State

	spinner spinner.Model
	status  string
	errText string
	confirm *confirmPrompt

	login     loginState
	chat      chatState
	history   historyState
	knowledge knowledgeState
	email     emailState
	settings  settingsState
}

func newAppModel(d deps) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := appModel{
		deps:      d,
		snap:      d.store.Snapshot(),
		spinner:   sp,
		login:     newLoginState(),
		chat:      newChatState(),
		knowledge: newKnowledgeState(),
		email:     newEmailState(),
	}
	m.screen = screenLogin
	if m.snap.IsAuthenticated {
		m.screen = screenChat
	}
	m.syncChat()
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.snap.IsAuthenticated {
		cmds = append(cmds, cmdRestoreSession(m.ctx, m.services.AuthService))
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.snap = m.store.Snapshot()
	m.syncChat()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stateChangedMsg:
		if !m.snap.IsAuthenticated && m.screen != screenLogin {
			m.screen = screenLogin
		}
		return m, nil

	case sessionExpiredMsg:
		m.screen = screenLogin
		m.confirm = nil
		m.login = newLoginState()
		m.login.info = "Your session has expired. Please sign in again."
		return m, nil

	case sessionRestoredMsg:
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
		}
		if !m.snap.IsAuthenticated {
			m.screen = screenLogin
			return m, nil
		}
		return m, m.loadUserData()

	case loginURLMsg:
		m.login.busy = false
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		m.login.url = msg.url
		m.login.info = "Finish signing in in your browser. This page updates by itself."
		m.login.busy = true
		return m, cmdAwaitLogin(m.ctx, m.oauth)

	case loginDoneMsg:
		m.login.busy = false
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		m.login = newLoginState()
		m.screen = screenChat
		m.resize()
		return m, tea.Batch(m.setStatus("Signed in as "+displayName(msg.user)), m.loadUserData())

	case logoutDoneMsg:
		m.screen = screenLogin
		m.login = newLoginState()
		m.knowledge = newKnowledgeState()
		m.email = newEmailState()
		m.settings = settingsState{}
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		return m, m.setStatus("Signed out")

	case answerMsg:
		if msg.err != nil {
			return m, m.setStatus(humanizeError(msg.err))
		}
		return m, nil

	case historyLoadedMsg:
		m.history.clamp(len(m.snap.Conversations))
		if msg.err != nil {
			return m, m.setStatus("Could not load history: " + humanizeError(msg.err))
		}
		return m, nil

	case documentsLoadedMsg:
		m.knowledge.clamp(len(m.snap.Documents))
		if msg.err != nil {
			return m, m.setStatus("Could not load documents: " + humanizeError(msg.err))
		}
		return m, nil

	case uploadDoneMsg:
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		return m, tea.Batch(m.setStatus("Uploaded "+msg.doc.Filename), cmdKnowledgeStats(m.ctx, m.services.SystemService))

	case searchDoneMsg:
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		res := msg.results
		m.knowledge.results = &res
		return m, nil

	case statsMsg:
		if msg.err == nil {
			stats := msg.stats
			m.knowledge.stats = &stats
		}
		return m, nil

	case emailStatusMsg:
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		status := msg.status
		m.email.status = &status
		return m, nil

	case emailListMsg:
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		m.email.list = msg.list
		m.email.loaded = true
		m.email.cursor = 0
		return m, nil

	case connectURLMsg:
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		m.email.connectURL = msg.url
		return m, m.setStatus("Opened the mailbox consent page")

	case systemInfoMsg:
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		health, info := msg.health, msg.info
		m.settings.health, m.settings.info = &health, &info
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.errText = humanizeError(msg.err)
			return m, nil
		}
		return m, m.setStatus(msg.status)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.errText != "" {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errText = ""
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			cmd := m.confirm.onYes
			m.confirm = nil
			return m, cmd
		case key.Matches(msg, keys.no, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	if m.screen == screenLogin {
		return m.updateLogin(msg)
	}

	switch {
	case key.Matches(msg, keys.nextPage):
		return m, m.switchPage(1)
	case key.Matches(msg, keys.prevPage):
		return m, m.switchPage(-1)
	}

	switch m.screen {
	case screenChat:
		return m.updateChat(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenKnowledge:
		return m.updateKnowledge(msg)
	case screenEmail:
		return m.updateEmail(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	p := m.theme.get()

	var b strings.Builder
	b.WriteString(m.renderHeader(p))
	b.WriteString("\n\n")

	switch m.screen {
	case screenLogin:
		b.WriteString(m.viewLogin(p))
	case screenChat:
		b.WriteString(m.viewChat(p))
	case screenHistory:
		b.WriteString(m.viewHistory(p))
	case screenKnowledge:
		b.WriteString(m.viewKnowledge(p))
	case screenEmail:
		b.WriteString(m.viewEmail(p))
	case screenSettings:
		b.WriteString(m.viewSettings(p))
	}

	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(p.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(p.help.Render(m.helpLine()))

	page := p.app.Render(b.String())

	switch {
	case m.errText != "":
		return m.overlay(p, page, p.err.Render("Error")+"\n\n"+m.errText+"\n\n"+p.help.Render("enter: close"))
	case m.confirm != nil:
		return m.overlay(p, page, m.confirm.text+"\n\n"+p.help.Render("y: yes • n: no"))
	}
	return page
}

// switchPage moves dir tabs along pages and loads what the target page
// shows.
func (m *appModel) switchPage(dir int) tea.Cmd {
	idx := 0
	for i, s := range pages {
		if s == m.screen {
			idx = i
		}
	}
	idx = (idx + dir + len(pages)) % len(pages)
	m.screen = pages[idx]

	switch m.screen {
	case screenHistory:
		return cmdLoadHistory(m.ctx, m.services.ChatService)
	case screenKnowledge:
		return cmdKnowledgeStats(m.ctx, m.services.SystemService)
	case screenEmail:
		if m.email.status == nil {
			return tea.Batch(cmdEmailStatus(m.ctx, m.services.EmailService), cmdRecentEmails(m.ctx, m.services.EmailService))
		}
	case screenSettings:
		return cmdSystemInfo(m.ctx, m.services.SystemService, false)
	}
	return nil
}

func (m *appModel) loadUserData() tea.Cmd {
	return tea.Batch(
		cmdLoadHistory(m.ctx, m.services.ChatService),
		cmdReloadDocuments(m.ctx, m.services.KnowledgeService),
	)
}

func (m *appModel) setStatus(s string) tea.Cmd {
	m.status = s
	return cmdClearStatus()
}

func (m *appModel) resize() {
	m.chat.resize(m.width, m.height, m.snap.IsSidebarOpen)
	m.syncChat()
}

func (m appModel) helpLine() string {
	switch m.screen {
	case screenLogin:
		if m.login.entering {
			return "enter: sign in • esc: cancel"
		}
		h := "enter: sign in with browser • c: paste code"
		if m.devLogin {
			h += " • d: developer login"
		}
		if m.login.url != "" {
			h += " • ctrl+y: copy link"
		}
		return h + " • q: quit"
	case screenChat:
		return "enter: send • ctrl+n: new chat • ctrl+y: copy answer • ctrl+b: sidebar • pgup/pgdown: scroll • tab: next page"
	case screenHistory:
		return "↑/↓: move • enter: open • d: delete • r: reload • tab: next page • q: quit"
	case screenKnowledge:
		if m.knowledge.mode != inputNone {
			return "enter: submit • esc: cancel"
		}
		return "↑/↓: move • u: upload • /: search • d: delete • r: reload • s: stats • tab: next page • q: quit"
	case screenEmail:
		if m.email.searching {
			return "enter: search • esc: cancel"
		}
		return "↑/↓: move • r: recent • /: search • s: status • c: connect mailbox • tab: next page • q: quit"
	case screenSettings:
		return "t: toggle theme • h: refresh status • v: build info • o: sign out • tab: next page • q: quit"
	}
	return ""
}

func displayName(u models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
