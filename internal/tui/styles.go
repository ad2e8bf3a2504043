package tui

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-campus-assistant/models"
)

// palette is the full set of styles for one theme.
type palette struct {
	theme models.Theme

	app       lipgloss.Style
	title     lipgloss.Style
	tab       lipgloss.Style
	tabActive lipgloss.Style
	help      lipgloss.Style
	muted     lipgloss.Style
	err       lipgloss.Style
	status    lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	source    lipgloss.Style
	selected  lipgloss.Style
	sidebar   lipgloss.Style
	overlay   lipgloss.Style

	heading lipgloss.Style
	bold    lipgloss.Style
	italic  lipgloss.Style
	code    lipgloss.Style
}

func newPalette(theme models.Theme) *palette {
	accent, text, faint, danger, codeFg := lipgloss.Color("#00704A"), lipgloss.Color("#1F2937"),
		lipgloss.Color("#6B7280"), lipgloss.Color("#B91C1C"), lipgloss.Color("#7C3AED")
	if theme == models.ThemeDark {
		accent, text, faint, danger, codeFg = lipgloss.Color("#34D399"), lipgloss.Color("#F3F4F6"),
			lipgloss.Color("#9CA3AF"), lipgloss.Color("#F87171"), lipgloss.Color("#C4B5FD")
	}

	return &palette{
		theme: theme,

		app:       lipgloss.NewStyle().Padding(1, 2).Foreground(text),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		tab:       lipgloss.NewStyle().Foreground(faint),
		tabActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent),
		help:      lipgloss.NewStyle().Faint(true),
		muted:     lipgloss.NewStyle().Foreground(faint),
		err:       lipgloss.NewStyle().Bold(true).Foreground(danger),
		status:    lipgloss.NewStyle().Italic(true).Foreground(accent),
		user:      lipgloss.NewStyle().Bold(true).Foreground(text),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(accent),
		source:    lipgloss.NewStyle().Foreground(faint),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		sidebar:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(faint).PaddingRight(1).MarginRight(1),
		overlay:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),

		heading: lipgloss.NewStyle().Bold(true).Foreground(accent),
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
		code:    lipgloss.NewStyle().Foreground(codeFg),
	}
}

// themeHolder shares the active palette between the store callback and the
// running model.
type themeHolder struct {
	p atomic.Pointer[palette]
}

func newThemeHolder(theme models.Theme) *themeHolder {
	h := &themeHolder{}
	h.set(theme)
	return h
}

func (h *themeHolder) set(theme models.Theme) {
	h.p.Store(newPalette(theme))
}

func (h *themeHolder) get() *palette {
	return h.p.Load()
}
