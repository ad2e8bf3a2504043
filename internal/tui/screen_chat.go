package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/models"
)

const (
	sidebarWidth = 26
	// chatChrome is the number of rows around the viewport: header, input,
	// loading line, status and help.
	chatChrome = 10
)

type chatState struct {
	input    textinput.Model
	viewport viewport.Model
	rendered string
}

func newChatState() chatState {
	input := textinput.New()
	input.Placeholder = "Ask a question…"
	input.CharLimit = 4000
	input.Focus()

	return chatState{
		input:    input,
		viewport: viewport.New(80, 20),
	}
}

func (c *chatState) resize(width, height int, sidebar bool) {
	if width <= 0 || height <= 0 {
		return
	}
	w := width - 4
	if sidebar {
		w -= sidebarWidth + 2
	}
	c.viewport.Width = max(w, 20)
	c.viewport.Height = max(height-chatChrome, 3)
	c.input.Width = max(w-4, 10)
	c.rendered = ""
}

// syncChat re-renders the conversation when the snapshot changed and keeps
// the newest message in view.
func (m *appModel) syncChat() {
	content := renderConversation(m.snap, m.theme.get(), m.chat.viewport.Width)
	if content == m.chat.rendered {
		return
	}
	m.chat.rendered = content
	m.chat.viewport.SetContent(content)
	m.chat.viewport.GotoBottom()
}

func (m appModel) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		question := strings.TrimSpace(m.chat.input.Value())
		if question == "" || m.snap.IsLoading {
			return m, nil
		}
		m.chat.input.Reset()
		return m, cmdAsk(m.ctx, m.services.ChatService, question)

	case key.Matches(msg, keys.newChat):
		m.services.ChatService.NewChat()
		return m, m.setStatus("Started a new conversation")

	case key.Matches(msg, keys.copy):
		answer, ok := lastAnswer(m.snap.Messages)
		if !ok {
			return m, nil
		}
		return m, cmdCopy(answer, "Answer")

	case key.Matches(msg, keys.sidebar):
		m.store.ToggleSidebar()
		m.snap = m.store.Snapshot()
		m.resize()
		return m, nil

	case key.Matches(msg, keys.scrollUp, keys.scrollDown):
		var cmd tea.Cmd
		m.chat.viewport, cmd = m.chat.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m appModel) viewChat(p *palette) string {
	main := m.chat.viewport.View()
	if m.snap.IsLoading {
		main += "\n" + m.spinner.View() + " Thinking…"
	} else {
		main += "\n"
	}
	main += "\n" + m.chat.input.View()

	if !m.snap.IsSidebarOpen {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, p.sidebar.Render(m.renderSidebar(p)), main)
}

func (m appModel) renderSidebar(p *palette) string {
	var b strings.Builder
	b.WriteString(p.title.Render("Conversations"))
	b.WriteString("\n")

	if len(m.snap.Conversations) == 0 {
		b.WriteString(p.muted.Render("none yet"))
		return b.String()
	}

	limit := max(m.chat.viewport.Height, 3)
	for i, c := range m.snap.Conversations {
		if i >= limit {
			b.WriteString(p.muted.Render(fmt.Sprintf("… %d more", len(m.snap.Conversations)-limit)))
			break
		}
		title := fitText(conversationTitle(c), sidebarWidth-2)
		if m.snap.CurrentConversation != nil && m.snap.CurrentConversation.ID == c.ID {
			b.WriteString(p.selected.Render("› " + title))
		} else {
			b.WriteString("  " + title)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderConversation renders the message buffer of s.
func renderConversation(s state.State, p *palette, width int) string {
	if len(s.Messages) == 0 {
		return p.muted.Render("Ask anything about courses, deadlines, campus services or your university email.")
	}

	var b strings.Builder
	for i, msg := range s.Messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderMessage(msg, p, width))
	}
	return b.String()
}

func renderMessage(msg models.Message, p *palette, width int) string {
	var b strings.Builder
	stamp := ""
	if !msg.Timestamp.IsZero() {
		stamp = " " + p.muted.Render(msg.Timestamp.Local().Format("15:04"))
	}

	if msg.Role == models.RoleUser {
		b.WriteString(p.user.Render("You") + stamp + "\n")
		b.WriteString(wrap(msg.Content, width))
		return b.String()
	}

	b.WriteString(p.assistant.Render("Assistant") + stamp + "\n")
	b.WriteString(wrap(renderMarkdown(msg.Content, p), width))
	if msg.IsStreaming {
		b.WriteString("▍")
	}

	if len(msg.Sources) > 0 {
		b.WriteString("\n" + p.muted.Render("Sources:"))
		for _, src := range msg.Sources {
			b.WriteString("\n" + p.source.Render(fmt.Sprintf("  • [%s] %s (%.2f)", sourceLabel(src.Kind), src.Title, src.RelevanceScore)))
		}
	}
	return b.String()
}

func sourceLabel(kind models.SourceKind) string {
	if kind == models.SourceEmail {
		return "email"
	}
	return "kb"
}

func lastAnswer(msgs []models.Message) (string, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == models.RoleAssistant {
			return msgs[i].Content, true
		}
	}
	return "", false
}

func conversationTitle(c models.Conversation) string {
	if c.Title != "" {
		return c.Title
	}
	return "Untitled conversation"
}
