package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-campus-assistant/internal/mock"
	"github.com/MKhiriev/go-campus-assistant/internal/service"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/models"
)

type testServices struct {
	auth      *mock.MockAuthService
	chat      *mock.MockChatService
	knowledge *mock.MockKnowledgeService
	email     *mock.MockEmailService
	system    *mock.MockSystemService
	store     *state.Store
	theme     *themeHolder
	opened    []string
}

func newTestModel(t *testing.T, signedIn, devLogin bool) (appModel, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		auth:      mock.NewMockAuthService(ctrl),
		chat:      mock.NewMockChatService(ctrl),
		knowledge: mock.NewMockKnowledgeService(ctrl),
		email:     mock.NewMockEmailService(ctrl),
		system:    mock.NewMockSystemService(ctrl),
		store:     state.New(context.Background(), nil, state.DefaultNamespace, nil),
	}
	if signedIn {
		ts.store.SetUser(&models.User{ID: "7", Name: "Ada", Email: "ada@uni.example.edu"})
	}
	ts.theme = newThemeHolder(ts.store.Snapshot().Theme)
	ts.store.SetThemeApplier(state.ThemeApplierFunc(ts.theme.set))

	services := &service.ClientServices{
		AuthService:      ts.auth,
		ChatService:      ts.chat,
		KnowledgeService: ts.knowledge,
		EmailService:     ts.email,
		SystemService:    ts.system,
	}

	flow := newOAuthFlow(ts.auth, nil)
	flow.openURL = nil

	m := newAppModel(deps{
		ctx:      context.Background(),
		services: services,
		store:    ts.store,
		oauth:    flow,
		theme:    ts.theme,
		openURL: func(u string) error {
			ts.opened = append(ts.opened, u)
			return nil
		},
		buildInfo: models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"),
		devLogin:  devLogin,
	})
	return m, ts
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

// ── Startup ──

func TestNewAppModel_SignedOutStartsOnLogin(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	assert.Equal(t, screenLogin, m.screen)
	assert.Contains(t, m.View(), "Campus Assistant")
}

func TestNewAppModel_SignedInRestoresSession(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	assert.Equal(t, screenChat, m.screen)
	require.NotNil(t, m.Init())

	ts.auth.EXPECT().RestoreSession(gomock.Any()).Return(nil)
	msg := cmdRestoreSession(m.ctx, ts.auth)()
	assert.Equal(t, sessionRestoredMsg{}, msg)
}

func TestSessionRestored_ExpiredGoesToLogin(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	ts.store.SetUser(nil)

	m, cmd := update(t, m, sessionRestoredMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, screenLogin, m.screen)
}

// ── Sign-in ──

func TestLogin_DevLoginOnlyWhenEnabled(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	_, cmd := update(t, m, runes("d"))
	assert.Nil(t, cmd)

	m, ts := newTestModel(t, false, true)
	user := models.User{ID: "1", Name: "Developer"}
	ts.auth.EXPECT().DevLogin(gomock.Any()).Return(user, nil)

	m, cmd = update(t, m, runes("d"))
	require.NotNil(t, cmd)
	assert.True(t, m.login.busy)
	assert.Equal(t, loginDoneMsg{user: user}, cmd())
}

func TestLogin_ManualCode(t *testing.T) {
	m, ts := newTestModel(t, false, false)

	m, _ = update(t, m, runes("c"))
	require.True(t, m.login.entering)
	m, _ = update(t, m, runes("code-123"))

	ts.auth.EXPECT().CompleteOAuth(gomock.Any(), "code-123").Return(models.User{ID: "7"}, nil)
	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.False(t, m.login.entering)
	assert.Equal(t, loginDoneMsg{user: models.User{ID: "7"}}, cmd())
}

func TestLogin_BrowserFlowShowsURL(t *testing.T) {
	m, ts := newTestModel(t, false, false)

	ts.auth.EXPECT().LoginURL(gomock.Any()).Return("https://login.example.edu/authorize", nil)
	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)

	m, cmd = update(t, m, cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, "https://login.example.edu/authorize", m.login.url)
	assert.Contains(t, m.View(), "https://login.example.edu/authorize")
}

func TestLoginDone_Success(t *testing.T) {
	m, ts := newTestModel(t, false, false)
	ts.store.SetUser(&models.User{ID: "7", Name: "Ada"})

	m, cmd := update(t, m, loginDoneMsg{user: models.User{ID: "7", Name: "Ada"}})
	assert.NotNil(t, cmd)
	assert.Equal(t, screenChat, m.screen)
	assert.Equal(t, "Signed in as Ada", m.status)
}

func TestLoginDone_FailureShowsError(t *testing.T) {
	m, _ := newTestModel(t, false, false)

	m, _ = update(t, m, loginDoneMsg{err: errors.New("sign-in was not completed")})
	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "sign-in was not completed", m.errText)
	assert.Contains(t, m.View(), "sign-in was not completed")

	m, _ = update(t, m, enterKey)
	assert.Empty(t, m.errText)
}

func TestSessionExpired(t *testing.T) {
	m, _ := newTestModel(t, true, false)
	m.confirm = &confirmPrompt{text: "Delete?"}

	m, _ = update(t, m, sessionExpiredMsg{})
	assert.Equal(t, screenLogin, m.screen)
	assert.Nil(t, m.confirm)
	assert.Contains(t, m.login.info, "session has expired")
}

// ── Chat ──

func TestChat_SendQuestion(t *testing.T) {
	m, ts := newTestModel(t, true, false)

	m, _ = update(t, m, runes("When does the library open?"))
	ts.chat.EXPECT().Ask(gomock.Any(), "When does the library open?").Return(models.Message{}, nil)

	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.Empty(t, m.chat.input.Value())
	assert.Equal(t, answerMsg{}, cmd())
}

func TestChat_IgnoresEnterWhileLoading(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m, _ = update(t, m, runes("second question"))
	ts.store.SetLoading(true)

	m, cmd := update(t, m, enterKey)
	assert.Nil(t, cmd)
	assert.Equal(t, "second question", m.chat.input.Value())
}

func TestChat_IgnoresBlankQuestion(t *testing.T) {
	m, _ := newTestModel(t, true, false)
	m, _ = update(t, m, runes("   "))

	_, cmd := update(t, m, enterKey)
	assert.Nil(t, cmd)
}

func TestChat_NewChat(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	ts.chat.EXPECT().NewChat()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Started a new conversation", m.status)
}

func TestChat_ToggleSidebar(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	require.True(t, ts.store.Snapshot().IsSidebarOpen)

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.False(t, ts.store.Snapshot().IsSidebarOpen)
}

func TestChat_ViewFollowsStore(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	ts.store.AddMessage(models.Message{ID: "1", Role: models.RoleUser, Content: "hello there"})
	ts.store.AddMessage(models.Message{ID: "2", Role: models.RoleAssistant, Content: "Hi Ada"})

	m, _ = update(t, m, stateChangedMsg{})
	view := m.View()
	assert.Contains(t, view, "hello there")
	assert.Contains(t, view, "Hi Ada")
}

func TestAnswerError_ShownAsStatus(t *testing.T) {
	m, _ := newTestModel(t, true, false)

	m, _ = update(t, m, answerMsg{err: errors.New("boom")})
	assert.Equal(t, "boom", m.status)
	assert.Empty(t, m.errText)
}

// ── Navigation ──

func TestTab_CyclesPagesAndLoads(t *testing.T) {
	m, ts := newTestModel(t, true, false)

	m, cmd := update(t, m, tabKey)
	assert.Equal(t, screenHistory, m.screen)
	ts.chat.EXPECT().LoadHistory(gomock.Any()).Return(nil)
	assert.Equal(t, historyLoadedMsg{}, cmd())

	m, cmd = update(t, m, tabKey)
	assert.Equal(t, screenKnowledge, m.screen)
	ts.system.EXPECT().Stats(gomock.Any()).Return(models.KnowledgeStats{DocumentsCount: 2}, nil)
	assert.Equal(t, statsMsg{stats: models.KnowledgeStats{DocumentsCount: 2}}, cmd())

	m, _ = update(t, m, tabKey)
	assert.Equal(t, screenEmail, m.screen)

	m, _ = update(t, m, tabKey)
	assert.Equal(t, screenSettings, m.screen)

	m, _ = update(t, m, tabKey)
	assert.Equal(t, screenChat, m.screen)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, screenSettings, m.screen)
}

func TestLoggedOut_StateChangeReturnsToLogin(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m.screen = screenKnowledge
	ts.store.SetUser(nil)

	m, _ = update(t, m, stateChangedMsg{})
	assert.Equal(t, screenLogin, m.screen)
}

// ── History ──

func TestHistory_OpenConversation(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	ts.store.SetConversations([]models.Conversation{{ID: "10", Title: "Exams"}, {ID: "11", Title: "Dorms"}})
	m.screen = screenHistory

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 1, m.history.cursor)

	ts.chat.EXPECT().OpenConversation(models.ID("11")).Return(nil)
	m, _ = update(t, m, enterKey)
	assert.Equal(t, screenChat, m.screen)
}

func TestHistory_DeleteAsksFirst(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	ts.store.SetConversations([]models.Conversation{{ID: "10", Title: "Exams"}})
	m.screen = screenHistory

	m, cmd := update(t, m, runes("d"))
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), `Delete conversation "Exams"?`)

	m, cmd = update(t, m, runes("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)

	m, _ = update(t, m, runes("d"))
	m, cmd = update(t, m, runes("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.confirm)

	ts.chat.EXPECT().DeleteConversation(gomock.Any(), models.ID("10")).Return(nil)
	assert.Equal(t, opDoneMsg{status: "Conversation deleted"}, cmd())
}

// ── Knowledge base ──

func TestKnowledge_Upload(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m.screen = screenKnowledge

	m, _ = update(t, m, runes("u"))
	require.Equal(t, inputUpload, m.knowledge.mode)
	m, _ = update(t, m, runes("/tmp/syllabus.pdf"))

	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.Equal(t, inputNone, m.knowledge.mode)
	assert.Equal(t, "Uploading /tmp/syllabus.pdf…", m.status)

	ts.knowledge.EXPECT().Upload(gomock.Any(), "/tmp/syllabus.pdf").Return(models.Document{Filename: "syllabus.pdf"}, nil)
	msg := cmdUpload(m.ctx, ts.knowledge, "/tmp/syllabus.pdf")()
	m, _ = update(t, m, msg)
	assert.Equal(t, "Uploaded syllabus.pdf", m.status)
}

func TestKnowledge_SearchResults(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m.screen = screenKnowledge

	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("exam rules"))
	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)

	results := models.SearchResults{Count: 1, Results: []models.SearchHit{
		{Text: "Exams start in June.", Metadata: map[string]any{"filename": "rules.pdf"}, Distance: 0.12},
	}}
	ts.knowledge.EXPECT().Search(gomock.Any(), "exam rules", 0).Return(results, nil)

	m, _ = update(t, m, cmd())
	view := m.View()
	assert.Contains(t, view, "Search results (1)")
	assert.Contains(t, view, "rules.pdf")
	assert.Contains(t, view, "Exams start in June.")
}

func TestKnowledge_EscCancelsInput(t *testing.T) {
	m, _ := newTestModel(t, true, false)
	m.screen = screenKnowledge

	m, _ = update(t, m, runes("u"))
	m, cmd := update(t, m, escKey)
	assert.Nil(t, cmd)
	assert.Equal(t, inputNone, m.knowledge.mode)
}

func TestKnowledge_DeleteDocument(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	ts.store.SetDocuments([]models.Document{{ID: "3", Filename: "old.txt", Status: models.DocumentCompleted}})
	m.screen = screenKnowledge

	m, _ = update(t, m, runes("d"))
	require.NotNil(t, m.confirm)
	_, cmd := update(t, m, runes("y"))
	require.NotNil(t, cmd)

	ts.knowledge.EXPECT().Delete(gomock.Any(), models.ID("3")).Return(nil)
	assert.Equal(t, opDoneMsg{status: "Document deleted"}, cmd())
}

// ── Email ──

func TestEmail_ConnectOpensBrowser(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m.screen = screenEmail

	ts.auth.EXPECT().EmailConnectURL(gomock.Any()).Return("https://login.example.edu/consent", nil)
	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, []string{"https://login.example.edu/consent"}, ts.opened)
	assert.Equal(t, "https://login.example.edu/consent", m.email.connectURL)
}

func TestEmail_SearchAndView(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m.screen = screenEmail
	m.email.status = &models.EmailStatus{Connected: true}

	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("exam"))
	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)

	list := models.EmailList{Count: 1, Emails: []models.EmailMessage{
		{ID: "e1", Subject: "Exam schedule", Sender: "Registrar", SenderEmail: "reg@uni.example.edu", BodyPreview: "The exam schedule is out."},
	}}
	ts.email.EXPECT().Search(gomock.Any(), "exam", 0).Return(list, nil)

	m, _ = update(t, m, cmd())
	view := m.View()
	assert.Contains(t, view, "Mailbox connected")
	assert.Contains(t, view, "Exam schedule")
	assert.Contains(t, view, "reg@uni.example.edu")
}

// ── Settings ──

func TestSettings_ToggleTheme(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m.screen = screenSettings

	_, _ = update(t, m, runes("t"))
	assert.Equal(t, models.ThemeDark, ts.store.Snapshot().Theme)
	assert.Equal(t, models.ThemeDark, ts.theme.get().theme)
}

func TestSettings_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t, true, false)
	m.screen = screenSettings

	assert.NotContains(t, m.View(), "abc123")
	m, _ = update(t, m, runes("v"))
	assert.Contains(t, m.View(), "abc123")
}

func TestSettings_Logout(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m.screen = screenSettings

	m, _ = update(t, m, runes("o"))
	require.NotNil(t, m.confirm)
	m, cmd := update(t, m, runes("y"))
	require.NotNil(t, cmd)

	ts.auth.EXPECT().Logout(gomock.Any()).Return(nil)
	m, _ = update(t, m, cmd())
	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Signed out", m.status)
}

func TestSettings_RefreshInvalidatesCache(t *testing.T) {
	m, ts := newTestModel(t, true, false)
	m.screen = screenSettings

	_, cmd := update(t, m, runes("h"))
	require.NotNil(t, cmd)

	gomock.InOrder(
		ts.system.EXPECT().Invalidate(),
		ts.system.EXPECT().Health(gomock.Any()).Return(models.Health{Status: "healthy"}, nil),
		ts.system.EXPECT().Info(gomock.Any()).Return(models.ServiceInfo{Service: "campus-assistant", Version: "1.0"}, nil),
	)
	msg := cmd()
	m, _ = update(t, m, msg)
	view := m.View()
	assert.Contains(t, view, "healthy")
	assert.Contains(t, view, "campus-assistant 1.0")
}

func TestForceQuit(t *testing.T) {
	m, _ := newTestModel(t, true, false)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
