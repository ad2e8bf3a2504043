package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-campus-assistant/models"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputUpload
	inputSearch
)

type knowledgeState struct {
	cursor  int
	mode    inputMode
	input   textinput.Model
	results *models.SearchResults
	stats   *models.KnowledgeStats
}

func newKnowledgeState() knowledgeState {
	input := textinput.New()
	input.CharLimit = 1024
	return knowledgeState{input: input}
}

func (k *knowledgeState) clamp(n int) {
	k.cursor = clampCursor(k.cursor, n)
}

func (m appModel) updateKnowledge(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.knowledge.mode != inputNone {
		switch {
		case key.Matches(msg, keys.esc):
			m.knowledge.mode = inputNone
			m.knowledge.input.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			value := strings.TrimSpace(m.knowledge.input.Value())
			mode := m.knowledge.mode
			m.knowledge.mode = inputNone
			m.knowledge.input.Blur()
			if value == "" {
				return m, nil
			}
			if mode == inputUpload {
				return m, tea.Batch(m.setStatus("Uploading "+value+"…"), cmdUpload(m.ctx, m.services.KnowledgeService, value))
			}
			return m, cmdSearchKnowledge(m.ctx, m.services.KnowledgeService, value)
		}
		var cmd tea.Cmd
		m.knowledge.input, cmd = m.knowledge.input.Update(msg)
		return m, cmd
	}

	docs := m.snap.Documents
	m.knowledge.clamp(len(docs))
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.knowledge.cursor = clampCursor(m.knowledge.cursor-1, len(docs))
	case key.Matches(msg, keys.down):
		m.knowledge.cursor = clampCursor(m.knowledge.cursor+1, len(docs))
	case key.Matches(msg, keys.upload):
		return m, m.startKnowledgeInput(inputUpload, "path to a .pdf, .docx or .txt file")
	case key.Matches(msg, keys.search):
		return m, m.startKnowledgeInput(inputSearch, "search the knowledge base")
	case key.Matches(msg, keys.reload):
		return m, cmdReloadDocuments(m.ctx, m.services.KnowledgeService)
	case key.Matches(msg, keys.stats):
		m.services.SystemService.Invalidate()
		return m, cmdKnowledgeStats(m.ctx, m.services.SystemService)
	case key.Matches(msg, keys.delete):
		if len(docs) == 0 {
			return m, nil
		}
		doc := docs[m.knowledge.cursor]
		m.confirm = &confirmPrompt{
			text:  fmt.Sprintf("Delete document %q?", doc.Filename),
			onYes: cmdDeleteDocument(m.ctx, m.services.KnowledgeService, doc.ID),
		}
	}
	return m, nil
}

func (m *appModel) startKnowledgeInput(mode inputMode, placeholder string) tea.Cmd {
	m.knowledge.mode = mode
	m.knowledge.input.Reset()
	m.knowledge.input.Placeholder = placeholder
	return m.knowledge.input.Focus()
}

func (m appModel) viewKnowledge(p *palette) string {
	var b strings.Builder

	if s := m.knowledge.stats; s != nil {
		b.WriteString(p.muted.Render(fmt.Sprintf("%d documents • %d vectors", s.DocumentsCount, s.VectorsCount)))
		b.WriteString("\n\n")
	}

	docs := m.snap.Documents
	if len(docs) == 0 {
		b.WriteString(p.muted.Render("No documents uploaded."))
	}
	for i, d := range docs {
		line := fmt.Sprintf("%-36s %-10s %8s  %s", fitText(d.Filename, 36), d.Status, formatSize(d.FileSize), documentDetail(d))
		b.WriteString(listRow(p, line, i == m.knowledge.cursor))
		b.WriteString("\n")
	}

	if m.knowledge.mode != inputNone {
		b.WriteString("\n" + m.knowledge.input.View() + "\n")
	}

	if res := m.knowledge.results; res != nil {
		b.WriteString("\n" + p.title.Render(fmt.Sprintf("Search results (%d)", res.Count)) + "\n")
		if len(res.Results) == 0 {
			b.WriteString(p.muted.Render("Nothing matched.") + "\n")
		}
		for _, hit := range res.Results {
			b.WriteString(p.selected.Render(hit.Title()) + p.muted.Render(fmt.Sprintf("  distance %.3f", hit.Distance)) + "\n")
			b.WriteString("  " + fitText(strings.Join(strings.Fields(hit.Text), " "), 100) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func documentDetail(d models.Document) string {
	switch d.Status {
	case models.DocumentFailed:
		return d.ErrorMessage
	case models.DocumentCompleted:
		return fmt.Sprintf("%d chunks", d.ChunkCount)
	}
	return ""
}
