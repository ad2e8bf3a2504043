package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SourceKind tells where a retrieved passage came from.
type SourceKind string

const (
	SourceKnowledgeBase SourceKind = "knowledge_base"
	SourceEmail         SourceKind = "email"
)

// Message is one entry of the active conversation's message buffer.
// Messages are created on the client and only their content may change
// afterwards, while a streamed answer is being filled in.
type Message struct {
	ID          ID        `json:"id"`
	Role        Role      `json:"role"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Sources     Sources   `json:"sources,omitempty"`
	IsStreaming bool      `json:"isStreaming,omitempty"`
}

// Clone returns a deep copy of m.
func (m Message) Clone() Message {
	c := m
	if m.Sources != nil {
		c.Sources = make(Sources, len(m.Sources))
		for i, s := range m.Sources {
			c.Sources[i] = s.Clone()
		}
	}
	return c
}

// Source is a passage the assistant used to build an answer.
type Source struct {
	Kind           SourceKind     `json:"type"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	RelevanceScore float64        `json:"relevance_score"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// Clone returns a copy of s with its own metadata map.
func (s Source) Clone() Source {
	c := s
	if s.Metadata != nil {
		c.Metadata = make(map[string]any, len(s.Metadata))
		for k, v := range s.Metadata {
			c.Metadata[k] = v
		}
	}
	return c
}

// Sources is an ordered list of [Source].
//
// It decodes either a plain JSON list or the grouped object the chat
// endpoint produces ({"knowledge":[...],"emails":[...]}); grouped sources
// are flattened knowledge first, then email.
type Sources []Source

type knowledgeSourceDTO struct {
	Source   string         `json:"source"`
	Text     string         `json:"text"`
	Score    float64        `json:"relevance_score"`
	Metadata map[string]any `json:"metadata"`
}

type emailSourceDTO struct {
	Subject string  `json:"subject"`
	From    string  `json:"from"`
	Date    string  `json:"date"`
	Preview string  `json:"preview"`
	Score   float64 `json:"relevance_score"`
}

type groupedSourcesDTO struct {
	Knowledge []knowledgeSourceDTO `json:"knowledge"`
	Emails    []emailSourceDTO     `json:"emails"`
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *Sources) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*s = nil
		return nil
	case data[0] == '[':
		var list []Source
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("decode source list: %w", err)
		}
		*s = list
		return nil
	}

	var grouped groupedSourcesDTO
	if err := json.Unmarshal(data, &grouped); err != nil {
		return fmt.Errorf("decode grouped sources: %w", err)
	}

	out := make(Sources, 0, len(grouped.Knowledge)+len(grouped.Emails))
	for _, k := range grouped.Knowledge {
		out = append(out, Source{
			Kind:           SourceKnowledgeBase,
			Title:          k.Source,
			Content:        k.Text,
			RelevanceScore: k.Score,
			Metadata:       k.Metadata,
		})
	}
	for _, e := range grouped.Emails {
		meta := map[string]any{}
		if e.From != "" {
			meta["from"] = e.From
		}
		if e.Date != "" {
			meta["date"] = e.Date
		}
		if len(meta) == 0 {
			meta = nil
		}
		out = append(out, Source{
			Kind:           SourceEmail,
			Title:          e.Subject,
			Content:        e.Preview,
			RelevanceScore: e.Score,
			Metadata:       meta,
		})
	}
	*s = out
	return nil
}

// ChatQuery is the body of POST /api/chat/ask.
type ChatQuery struct {
	Question       string `json:"question"`
	ConversationID ID     `json:"conversation_id,omitempty"`
}

// ChatAnswer is the payload of POST /api/chat/ask.
type ChatAnswer struct {
	Answer         string  `json:"answer"`
	Sources        Sources `json:"sources"`
	ConversationID ID      `json:"conversation_id"`
}
