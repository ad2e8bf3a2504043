package state

import (
	"slices"

	"github.com/MKhiriev/go-campus-assistant/models"
)

// Reducers return a new State and never modify the slices of the previous
// one, so earlier snapshots stay valid.

func setUser(s State, user *models.User) State {
	s.User = user.Clone()
	s.IsAuthenticated = s.User != nil
	return s
}

func toggleTheme(s State) State {
	s.Theme = s.Theme.Toggle()
	return s
}

func setTheme(s State, theme models.Theme) State {
	if !theme.Valid() {
		return s
	}
	s.Theme = theme
	return s
}

func setCurrentConversation(s State, conversation *models.Conversation) State {
	s.CurrentConversation = conversation.Clone()
	s.Messages = []models.Message{}
	if s.CurrentConversation != nil && s.CurrentConversation.Messages != nil {
		s.Messages = models.CloneMessages(s.CurrentConversation.Messages)
	}
	return s
}

func addMessage(s State, message models.Message) State {
	msgs := make([]models.Message, len(s.Messages), len(s.Messages)+1)
	copy(msgs, s.Messages)
	s.Messages = append(msgs, message.Clone())
	return s
}

func updateMessage(s State, id models.ID, content string) State {
	i := slices.IndexFunc(s.Messages, func(m models.Message) bool { return m.ID == id })
	if i < 0 {
		return s
	}

	msgs := slices.Clone(s.Messages)
	msgs[i].Content = content
	msgs[i].IsStreaming = false
	s.Messages = msgs
	return s
}

func clearMessages(s State) State {
	s.Messages = []models.Message{}
	s.CurrentConversation = nil
	return s
}

func setConversations(s State, list []models.Conversation) State {
	s.Conversations = cloneConversations(list)
	if s.Conversations == nil {
		s.Conversations = []models.Conversation{}
	}
	return s
}

func setDocuments(s State, list []models.Document) State {
	s.Documents = slices.Clone(list)
	if s.Documents == nil {
		s.Documents = []models.Document{}
	}
	return s
}

func toggleSidebar(s State) State {
	s.IsSidebarOpen = !s.IsSidebarOpen
	return s
}

func setLoading(s State, loading bool) State {
	s.IsLoading = loading
	return s
}
