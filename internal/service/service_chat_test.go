package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/mock"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/internal/validators"
	"github.com/MKhiriev/go-campus-assistant/models"
)

func newTestChatSvc(t *testing.T) (ChatService, *mock.MockServerAdapter, *state.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	store := newTestStore(t)
	return NewChatService(mockAdapter, store, &seqIDs{}, fixedClock), mockAdapter, store
}

// ── Ask ──────────────────────────────────────────────────────────────────────

func TestChatService_Ask_AppendsQuestionAndAnswer(t *testing.T) {
	svc, mockAdapter, store := newTestChatSvc(t)
	sources := models.Sources{{Kind: models.SourceKnowledgeBase, Title: "handbook.pdf", RelevanceScore: 0.9}}

	var loadingDuringCall bool
	mockAdapter.EXPECT().Ask(gomock.Any(), models.ChatQuery{Question: "library hours"}).
		DoAndReturn(func(context.Context, models.ChatQuery) (models.ChatAnswer, error) {
			loadingDuringCall = store.Snapshot().IsLoading
			return models.ChatAnswer{Answer: "8am to 10pm", Sources: sources}, nil
		})

	reply, err := svc.Ask(context.Background(), "  library hours ")
	require.NoError(t, err)
	assert.True(t, loadingDuringCall)

	snap := store.Snapshot()
	assert.False(t, snap.IsLoading)
	require.Len(t, snap.Messages, 2)

	assert.Equal(t, models.Message{
		ID: "id-1", Role: models.RoleUser, Content: "library hours", Timestamp: fixedNow,
	}, snap.Messages[0])
	assert.Equal(t, models.RoleAssistant, snap.Messages[1].Role)
	assert.Equal(t, "8am to 10pm", snap.Messages[1].Content)
	assert.Equal(t, sources, snap.Messages[1].Sources)
	assert.Equal(t, snap.Messages[1], reply)
}

func TestChatService_Ask_FailureAppendsApology(t *testing.T) {
	svc, mockAdapter, store := newTestChatSvc(t)

	mockAdapter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return(models.ChatAnswer{}, serverError)

	reply, err := svc.Ask(context.Background(), "library hours")
	assert.ErrorIs(t, err, adapter.ErrHTTP)
	assert.Equal(t, ApologyMessage, reply.Content)

	snap := store.Snapshot()
	assert.False(t, snap.IsLoading)
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, models.RoleAssistant, snap.Messages[1].Role)
	assert.Equal(t, ApologyMessage, snap.Messages[1].Content)
}

func TestChatService_Ask_Blank(t *testing.T) {
	svc, _, store := newTestChatSvc(t)

	_, err := svc.Ask(context.Background(), " \n\t")
	assert.ErrorIs(t, err, validators.ErrEmptyQuestion)
	assert.Empty(t, store.Snapshot().Messages)
}

func TestChatService_Ask_SendsActiveConversation(t *testing.T) {
	svc, mockAdapter, store := newTestChatSvc(t)
	store.SetCurrentConversation(&models.Conversation{ID: "c9"})

	mockAdapter.EXPECT().Ask(gomock.Any(), models.ChatQuery{Question: "next", ConversationID: "c9"}).
		Return(models.ChatAnswer{Answer: "ok"}, nil)

	_, err := svc.Ask(context.Background(), "next")
	require.NoError(t, err)
}

// ── History ──────────────────────────────────────────────────────────────────

func TestChatService_HistoryFlow(t *testing.T) {
	svc, mockAdapter, store := newTestChatSvc(t)
	conv := models.Conversation{
		ID:    "5",
		Title: "library hours",
		Messages: []models.Message{
			{ID: "5-q", Role: models.RoleUser, Content: "library hours"},
			{ID: "5-a", Role: models.RoleAssistant, Content: "8am"},
		},
	}

	mockAdapter.EXPECT().History(gomock.Any()).Return(models.History{Conversations: []models.Conversation{conv}}, nil)
	require.NoError(t, svc.LoadHistory(context.Background()))
	require.Len(t, store.Snapshot().Conversations, 1)

	require.NoError(t, svc.OpenConversation("5"))
	snap := store.Snapshot()
	require.NotNil(t, snap.CurrentConversation)
	assert.Equal(t, models.ID("5"), snap.CurrentConversation.ID)
	assert.Len(t, snap.Messages, 2)

	assert.ErrorIs(t, svc.OpenConversation("missing"), ErrConversationNotFound)

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteHistory(gomock.Any(), models.ID("5")).Return(nil),
		mockAdapter.EXPECT().History(gomock.Any()).Return(models.History{}, nil),
	)
	require.NoError(t, svc.DeleteConversation(context.Background(), "5"))

	snap = store.Snapshot()
	assert.Nil(t, snap.CurrentConversation)
	assert.Empty(t, snap.Messages)
	assert.Empty(t, snap.Conversations)
}

func TestChatService_DeleteConversation_Error(t *testing.T) {
	svc, mockAdapter, _ := newTestChatSvc(t)

	mockAdapter.EXPECT().DeleteHistory(gomock.Any(), models.ID("5")).Return(authError)

	err := svc.DeleteConversation(context.Background(), "5")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestChatService_NewChat(t *testing.T) {
	svc, _, store := newTestChatSvc(t)
	store.SetCurrentConversation(&models.Conversation{ID: "c1", Messages: []models.Message{{ID: "m"}}})

	svc.NewChat()

	snap := store.Snapshot()
	assert.Nil(t, snap.CurrentConversation)
	assert.Empty(t, snap.Messages)
}
