package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-campus-assistant/models"
)

func TestRenderMarkdown(t *testing.T) {
	p := newPalette(models.ThemeLight)

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "paragraphs",
			src:  "The library opens at 8:00.\n\nIt closes at 22:00.",
			want: []string{"The library opens at 8:00.", "It closes at 22:00."},
		},
		{
			name: "bullet list",
			src:  "- Main library\n- Science library",
			want: []string{"• ", "Main library", "Science library"},
		},
		{
			name: "ordered list keeps numbering",
			src:  "3. apply\n4. pay",
			want: []string{"3. ", "apply", "4. ", "pay"},
		},
		{
			name: "heading and emphasis",
			src:  "## Deadlines\n\nSubmit **before** Friday",
			want: []string{"Deadlines", "Submit ", "before", " Friday"},
		},
		{
			name: "link shows destination",
			src:  "See [the portal](https://portal.example.edu).",
			want: []string{"the portal", "(https://portal.example.edu)"},
		},
		{
			name: "code block",
			src:  "```\nmake build\n```",
			want: []string{"make build"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderMarkdown(tt.src, p)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			assert.NotContains(t, got, "**")
			assert.NotContains(t, got, "```")
		})
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "", renderMarkdown("", newPalette(models.ThemeDark)))
}
