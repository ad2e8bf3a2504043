package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campus-assistant/models"
)

func TestSetUser_DerivesAuthenticated(t *testing.T) {
	s := setUser(Defaults(), &models.User{ID: "1", Email: "a@uni.edu"})
	assert.True(t, s.IsAuthenticated)
	require.NotNil(t, s.User)
	assert.Equal(t, "a@uni.edu", s.User.Email)

	s = setUser(s, nil)
	assert.False(t, s.IsAuthenticated)
	assert.Nil(t, s.User)
}

func TestSetUser_CopiesInput(t *testing.T) {
	u := &models.User{ID: "1", Name: "Ann"}
	s := setUser(Defaults(), u)
	u.Name = "changed"

	assert.Equal(t, "Ann", s.User.Name)
}

func TestThemeReducers(t *testing.T) {
	s := Defaults()
	assert.Equal(t, models.ThemeLight, s.Theme)

	s = toggleTheme(s)
	assert.Equal(t, models.ThemeDark, s.Theme)
	s = toggleTheme(s)
	assert.Equal(t, models.ThemeLight, s.Theme)

	s = setTheme(s, models.ThemeDark)
	assert.Equal(t, models.ThemeDark, s.Theme)

	s = setTheme(s, models.Theme("sepia"))
	assert.Equal(t, models.ThemeDark, s.Theme)
}

func TestAddMessage_PreservesOrder(t *testing.T) {
	s := Defaults()
	for _, id := range []models.ID{"m1", "m2", "m3"} {
		s = addMessage(s, models.Message{ID: id, Role: models.RoleUser})
	}

	require.Len(t, s.Messages, 3)
	assert.Equal(t, models.ID("m1"), s.Messages[0].ID)
	assert.Equal(t, models.ID("m2"), s.Messages[1].ID)
	assert.Equal(t, models.ID("m3"), s.Messages[2].ID)
}

func TestAddMessage_DoesNotAliasPrevious(t *testing.T) {
	base := addMessage(Defaults(), models.Message{ID: "m1"})
	a := addMessage(base, models.Message{ID: "a"})
	b := addMessage(base, models.Message{ID: "b"})

	assert.Len(t, base.Messages, 1)
	assert.Equal(t, models.ID("a"), a.Messages[1].ID)
	assert.Equal(t, models.ID("b"), b.Messages[1].ID)
}

func TestUpdateMessage(t *testing.T) {
	s := addMessage(Defaults(), models.Message{ID: "m1", Content: "...", IsStreaming: true})
	prev := s

	s = updateMessage(s, "m1", "first")
	s = updateMessage(s, "m1", "second")

	m, ok := s.Message("m1")
	require.True(t, ok)
	assert.Equal(t, "second", m.Content)
	assert.False(t, m.IsStreaming)
	assert.Len(t, s.Messages, 1)

	old, _ := prev.Message("m1")
	assert.Equal(t, "...", old.Content)
	assert.True(t, old.IsStreaming)
}

func TestUpdateMessage_UnknownIDIsNoop(t *testing.T) {
	s := addMessage(Defaults(), models.Message{ID: "m1", Content: "hello"})

	got := updateMessage(s, "missing", "x")

	assert.Equal(t, s, got)
}

func TestClearMessages(t *testing.T) {
	conv := &models.Conversation{ID: "c1", Messages: []models.Message{{ID: "m1"}}}
	s := setCurrentConversation(Defaults(), conv)
	require.Len(t, s.Messages, 1)

	s = clearMessages(s)

	assert.Empty(t, s.Messages)
	assert.NotNil(t, s.Messages)
	assert.Nil(t, s.CurrentConversation)
}

func TestSetCurrentConversation(t *testing.T) {
	s := addMessage(Defaults(), models.Message{ID: "stale"})

	s = setCurrentConversation(s, &models.Conversation{
		ID:       "c1",
		Messages: []models.Message{{ID: "q"}, {ID: "a"}},
	})
	require.NotNil(t, s.CurrentConversation)
	require.Len(t, s.Messages, 2)
	assert.Equal(t, models.ID("q"), s.Messages[0].ID)

	s = setCurrentConversation(s, nil)
	assert.Nil(t, s.CurrentConversation)
	assert.Empty(t, s.Messages)
}

func TestSetDocuments_Replaces(t *testing.T) {
	s := setDocuments(Defaults(), []models.Document{{ID: "old"}})
	s = setDocuments(s, []models.Document{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	require.Len(t, s.Documents, 3)
	assert.Equal(t, models.ID("1"), s.Documents[0].ID)

	s = setDocuments(s, nil)
	assert.NotNil(t, s.Documents)
	assert.Empty(t, s.Documents)
}

func TestSetConversations_Replaces(t *testing.T) {
	s := setConversations(Defaults(), []models.Conversation{{ID: "a"}, {ID: "b"}})
	require.Len(t, s.Conversations, 2)

	s = setConversations(s, nil)
	assert.NotNil(t, s.Conversations)
	assert.Empty(t, s.Conversations)
}

func TestFlags(t *testing.T) {
	s := Defaults()
	assert.True(t, s.IsSidebarOpen)

	s = toggleSidebar(s)
	assert.False(t, s.IsSidebarOpen)

	s = setLoading(s, true)
	assert.True(t, s.IsLoading)
	s = setLoading(s, false)
	assert.False(t, s.IsLoading)
}

func TestClone_IsDeep(t *testing.T) {
	s := setUser(Defaults(), &models.User{ID: "1", Name: "Ann"})
	s = addMessage(s, models.Message{ID: "m1", Content: "hi"})

	c := s.Clone()
	c.User.Name = "Bob"
	c.Messages[0].Content = "bye"

	assert.Equal(t, "Ann", s.User.Name)
	assert.Equal(t, "hi", s.Messages[0].Content)
}
