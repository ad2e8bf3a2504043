package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type historyState struct {
	cursor int
}

func (h *historyState) clamp(n int) {
	h.cursor = clampCursor(h.cursor, n)
}

func (m appModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.snap.Conversations
	m.history.clamp(len(list))

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.history.cursor = clampCursor(m.history.cursor-1, len(list))
	case key.Matches(msg, keys.down):
		m.history.cursor = clampCursor(m.history.cursor+1, len(list))
	case key.Matches(msg, keys.reload):
		return m, cmdLoadHistory(m.ctx, m.services.ChatService)
	case key.Matches(msg, keys.enter):
		if len(list) == 0 {
			return m, nil
		}
		if err := m.services.ChatService.OpenConversation(list[m.history.cursor].ID); err != nil {
			m.errText = humanizeError(err)
			return m, nil
		}
		m.snap = m.store.Snapshot()
		m.syncChat()
		m.screen = screenChat
	case key.Matches(msg, keys.delete):
		if len(list) == 0 {
			return m, nil
		}
		c := list[m.history.cursor]
		m.confirm = &confirmPrompt{
			text:  fmt.Sprintf("Delete conversation %q?", conversationTitle(c)),
			onYes: cmdDeleteConversation(m.ctx, m.services.ChatService, c.ID),
		}
	}
	return m, nil
}

func (m appModel) viewHistory(p *palette) string {
	list := m.snap.Conversations
	if len(list) == 0 {
		return p.muted.Render("No saved conversations.")
	}

	rows := make([]string, 0, len(list))
	for i, c := range list {
		line := fmt.Sprintf("%-40s %3d msgs  %s", fitText(conversationTitle(c), 40), c.MessageCount, formatTime(c.UpdatedAt))
		rows = append(rows, listRow(p, line, i == m.history.cursor))
	}
	return strings.Join(rows, "\n")
}
