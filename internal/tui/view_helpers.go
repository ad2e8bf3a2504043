package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-campus-assistant/models"
)

func (m appModel) renderHeader(p *palette) string {
	if m.screen == screenLogin {
		return p.title.Render(screenLogin.title())
	}

	tabs := make([]string, 0, len(pages))
	for _, s := range pages {
		if s == m.screen {
			tabs = append(tabs, p.tabActive.Render(s.title()))
			continue
		}
		tabs = append(tabs, p.tab.Render(s.title()))
	}
	header := strings.Join(tabs, "  ")

	if u := m.snap.User; u != nil {
		header += "   " + p.muted.Render(displayName(*u))
	}
	return header
}

// overlay centers box over the page when the terminal size is known.
func (m appModel) overlay(p *palette, page, box string) string {
	rendered := p.overlay.Render(box)
	if m.width <= 0 || m.height <= 0 {
		return page + "\n\n" + rendered
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, rendered)
}

func listRow(p *palette, line string, selected bool) string {
	if selected {
		return p.selected.Render("› " + line)
	}
	return "  " + line
}

// fitText truncates s to width runes, marking the cut with an ellipsis.
func fitText(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func clampCursor(cursor, n int) int {
	switch {
	case n == 0 || cursor < 0:
		return 0
	case cursor >= n:
		return n - 1
	}
	return cursor
}

func formatTime(ts models.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04")
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
