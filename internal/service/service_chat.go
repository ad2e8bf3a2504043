package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/internal/validators"
	"github.com/MKhiriev/go-campus-assistant/models"
)

// ApologyMessage is shown as the assistant's reply when a question fails.
const ApologyMessage = "Sorry, something went wrong. Please try again later."

type chatService struct {
	adapter   adapter.ServerAdapter
	store     *state.Store
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time
}

func NewChatService(serverAdapter adapter.ServerAdapter, store *state.Store, ids IDGenerator, now func() time.Time) ChatService {
	if now == nil {
		now = time.Now
	}
	return &chatService{
		adapter:   serverAdapter,
		store:     store,
		validator: validators.NewInputValidator(),
		ids:       ids,
		now:       now,
	}
}

func (c *chatService) Ask(ctx context.Context, question string) (models.Message, error) {
	query := models.ChatQuery{Question: strings.TrimSpace(question)}
	if err := c.validator.Validate(ctx, query); err != nil {
		return models.Message{}, err
	}

	c.store.AddMessage(models.Message{
		ID:        models.ID(c.ids.Generate()),
		Role:      models.RoleUser,
		Content:   query.Question,
		Timestamp: c.now(),
	})

	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	if conv := c.store.Snapshot().CurrentConversation; conv != nil {
		query.ConversationID = conv.ID
	}

	answer, err := c.adapter.Ask(ctx, query)
	if err != nil {
		reply := c.assistantMessage(ApologyMessage, nil)
		c.store.AddMessage(reply)
		return reply, fmt.Errorf("ask assistant: %w", err)
	}

	reply := c.assistantMessage(answer.Answer, answer.Sources)
	c.store.AddMessage(reply)
	return reply, nil
}

func (c *chatService) assistantMessage(content string, sources models.Sources) models.Message {
	return models.Message{
		ID:        models.ID(c.ids.Generate()),
		Role:      models.RoleAssistant,
		Content:   content,
		Timestamp: c.now(),
		Sources:   sources,
	}
}

func (c *chatService) NewChat() {
	c.store.ClearMessages()
}

func (c *chatService) LoadHistory(ctx context.Context) error {
	history, err := c.adapter.History(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	c.store.SetConversations(history.Conversations)
	return nil
}

func (c *chatService) OpenConversation(id models.ID) error {
	conversations := c.store.Snapshot().Conversations
	i := slices.IndexFunc(conversations, func(conv models.Conversation) bool { return conv.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrConversationNotFound, id)
	}

	c.store.SetCurrentConversation(&conversations[i])
	return nil
}

func (c *chatService) DeleteConversation(ctx context.Context, id models.ID) error {
	if err := c.adapter.DeleteHistory(ctx, id); err != nil {
		return fmt.Errorf("delete conversation %s: %w", id, err)
	}

	if conv := c.store.Snapshot().CurrentConversation; conv != nil && conv.ID == id {
		c.store.ClearMessages()
	}
	return c.LoadHistory(ctx)
}
