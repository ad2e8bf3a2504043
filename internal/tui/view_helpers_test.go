package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/models"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd…", fitText("abcdefgh", 5))
	assert.Equal(t, "…", fitText("abc", 1))
	assert.Equal(t, "naïve", fitText("naïve", 5))
	assert.Equal(t, "untouched", fitText("untouched", 0))
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(3, 0))
	assert.Equal(t, 0, clampCursor(-1, 5))
	assert.Equal(t, 4, clampCursor(9, 5))
	assert.Equal(t, 2, clampCursor(2, 5))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KB", formatSize(1536))
	assert.Equal(t, "10.0 MB", formatSize(10<<20))
}

func TestFormatTime_Zero(t *testing.T) {
	assert.Equal(t, "-", formatTime(models.Timestamp{}))
	assert.NotEqual(t, "-", formatTime(models.Timestamp{Time: time.Now()}))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("question must not be empty"), "question must not be empty"},
		{"network", &adapter.APIError{Kind: adapter.KindNetwork}, "The server is unreachable. Check your connection and try again."},
		{"timeout", &adapter.APIError{Kind: adapter.KindTimeout}, "The server took too long to respond. Try again later."},
		{"auth", &adapter.APIError{Kind: adapter.KindAuth, Status: 401}, "Your session has expired. Please sign in again."},
		{"server", &adapter.APIError{Kind: adapter.KindHTTP, Status: 503, Message: "down"}, "The server failed to handle the request (503)."},
		{"client", &adapter.APIError{Kind: adapter.KindHTTP, Status: 413, Message: "too large"}, "Request rejected (413): too large"},
		{"application", &adapter.APIError{Kind: adapter.KindApplication, Code: 1002, Message: "document not found"}, "Error 1002: document not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

// ── Conversation rendering ──

func TestRenderConversation_Empty(t *testing.T) {
	out := renderConversation(state.Defaults(), newPalette(models.ThemeLight), 0)
	assert.Contains(t, out, "Ask anything")
}

func TestRenderConversation_MessagesAndSources(t *testing.T) {
	s := state.Defaults()
	s.Messages = []models.Message{
		{ID: "1", Role: models.RoleUser, Content: "When does the library open?"},
		{ID: "2", Role: models.RoleAssistant, Content: "At **8:00**.", Sources: models.Sources{
			{Kind: models.SourceKnowledgeBase, Title: "Handbook", RelevanceScore: 0.87},
			{Kind: models.SourceEmail, Title: "Opening hours", RelevanceScore: 0.5},
		}},
	}

	out := renderConversation(s, newPalette(models.ThemeLight), 0)
	assert.Contains(t, out, "You")
	assert.Contains(t, out, "When does the library open?")
	assert.Contains(t, out, "Assistant")
	assert.Contains(t, out, "8:00")
	assert.NotContains(t, out, "**")
	assert.Contains(t, out, "[kb] Handbook (0.87)")
	assert.Contains(t, out, "[email] Opening hours (0.50)")
}

func TestLastAnswer(t *testing.T) {
	_, ok := lastAnswer(nil)
	assert.False(t, ok)

	got, ok := lastAnswer([]models.Message{
		{Role: models.RoleAssistant, Content: "first"},
		{Role: models.RoleUser, Content: "again?"},
		{Role: models.RoleAssistant, Content: "second"},
		{Role: models.RoleUser, Content: "thanks"},
	})
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}
