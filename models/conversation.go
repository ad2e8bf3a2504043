package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Conversation is an entry of the chat history list.
type Conversation struct {
	ID           ID        `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	CreatedAt    Timestamp `json:"created_at"`
	UpdatedAt    Timestamp `json:"updated_at"`
	Messages     []Message `json:"messages,omitempty"`
}

// Clone returns a deep copy of c, or nil when c is nil.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	out := *c
	out.Messages = CloneMessages(c.Messages)
	return &out
}

// CloneMessages returns a deep copy of msgs; nil stays nil.
func CloneMessages(msgs []Message) []Message {
	if msgs == nil {
		return nil
	}
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		out[i] = m.Clone()
	}
	return out
}

type conversationAlias Conversation

// historyItemDTO is a single question/answer record stored by the backend.
type historyItemDTO struct {
	ID               ID              `json:"id"`
	Question         string          `json:"question"`
	Answer           string          `json:"answer"`
	KnowledgeSources json.RawMessage `json:"knowledge_sources"`
	EmailSources     json.RawMessage `json:"email_sources"`
	CreatedAt        Timestamp       `json:"created_at"`
}

// UnmarshalJSON implements [json.Unmarshaler]. Besides the conversation
// shape it accepts a history record ({id, question, answer, ...}), which is
// turned into a two-message conversation titled with the question.
func (c *Conversation) UnmarshalJSON(data []byte) error {
	var shape struct {
		Question *string `json:"question"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return fmt.Errorf("decode conversation: %w", err)
	}

	if shape.Question == nil {
		var a conversationAlias
		if err := json.Unmarshal(data, &a); err != nil {
			return fmt.Errorf("decode conversation: %w", err)
		}
		*c = Conversation(a)
		return nil
	}

	var item historyItemDTO
	if err := json.Unmarshal(data, &item); err != nil {
		return fmt.Errorf("decode history item: %w", err)
	}

	sources, err := historySources(item.KnowledgeSources, item.EmailSources)
	if err != nil {
		return err
	}

	*c = Conversation{
		ID:           item.ID,
		Title:        item.Question,
		MessageCount: 2,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.CreatedAt,
		Messages: []Message{
			{ID: item.ID + "-q", Role: RoleUser, Content: item.Question, Timestamp: item.CreatedAt.Time},
			{ID: item.ID + "-a", Role: RoleAssistant, Content: item.Answer, Timestamp: item.CreatedAt.Time, Sources: sources},
		},
	}
	return nil
}

func historySources(knowledge, emails json.RawMessage) (Sources, error) {
	if isNullJSON(knowledge) && isNullJSON(emails) {
		return nil, nil
	}
	if isNullJSON(knowledge) {
		knowledge = json.RawMessage("[]")
	}
	if isNullJSON(emails) {
		emails = json.RawMessage("[]")
	}

	grouped, err := json.Marshal(map[string]json.RawMessage{"knowledge": knowledge, "emails": emails})
	if err != nil {
		return nil, fmt.Errorf("regroup history sources: %w", err)
	}

	var out Sources
	if err = json.Unmarshal(grouped, &out); err != nil {
		return nil, fmt.Errorf("decode history sources: %w", err)
	}
	return out, nil
}

func isNullJSON(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// History is the payload of GET /api/chat/history.
type History struct {
	Conversations []Conversation
	Total         int
	Page          int
	PerPage       int
	Pages         int
}

type historyPageDTO struct {
	History []Conversation `json:"history"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Pages   int            `json:"pages"`
}

// UnmarshalJSON implements [json.Unmarshaler]. The payload is either a bare
// list of conversations or a paginated {history, total, page, ...} object.
func (h *History) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isNullJSON(data) {
		*h = History{}
		return nil
	}

	if data[0] == '[' {
		var list []Conversation
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("decode history list: %w", err)
		}
		*h = History{Conversations: list, Total: len(list), Page: 1, PerPage: len(list), Pages: 1}
		return nil
	}

	var page historyPageDTO
	if err := json.Unmarshal(data, &page); err != nil {
		return fmt.Errorf("decode history page: %w", err)
	}
	*h = History{
		Conversations: page.History,
		Total:         page.Total,
		Page:          page.Page,
		PerPage:       page.PerPage,
		Pages:         page.Pages,
	}
	return nil
}
