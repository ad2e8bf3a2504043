// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client-wide reactive state: the signed-in user,
// the UI theme, the active conversation with its message buffer, the
// conversation and document lists and a few UI flags.
//
// [Store] applies pure reducers under a mutex, notifies observers after each
// mutation and persists the {user, theme, isAuthenticated} subset to local
// storage so it survives restarts. Everything else is refetched.
package state

import (
	"slices"

	"github.com/MKhiriev/go-campus-assistant/models"
)

// State is one immutable snapshot of the client state.
type State struct {
	User *models.User
	// IsAuthenticated is derived from User and never set on its own.
	IsAuthenticated bool
	Theme           models.Theme

	CurrentConversation *models.Conversation
	// Messages is the buffer of the active conversation in display order.
	Messages      []models.Message
	Conversations []models.Conversation
	Documents     []models.Document

	IsSidebarOpen bool
	IsLoading     bool
}

// Defaults returns the state of a fresh client.
func Defaults() State {
	return State{
		Theme:         models.ThemeLight,
		Messages:      []models.Message{},
		Conversations: []models.Conversation{},
		Documents:     []models.Document{},
		IsSidebarOpen: true,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.User = s.User.Clone()
	c.CurrentConversation = s.CurrentConversation.Clone()
	c.Messages = models.CloneMessages(s.Messages)
	c.Conversations = cloneConversations(s.Conversations)
	c.Documents = slices.Clone(s.Documents)
	return c
}

// Message returns the buffered message with id.
func (s State) Message(id models.ID) (models.Message, bool) {
	i := slices.IndexFunc(s.Messages, func(m models.Message) bool { return m.ID == id })
	if i < 0 {
		return models.Message{}, false
	}
	return s.Messages[i], true
}

func cloneConversations(list []models.Conversation) []models.Conversation {
	if list == nil {
		return nil
	}
	out := make([]models.Conversation, len(list))
	for i := range list {
		out[i] = *list[i].Clone()
	}
	return out
}
