package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-campus-assistant/internal/service"
	"github.com/MKhiriev/go-campus-assistant/models"
)

const statusTimeout = 3 * time.Second

func cmdRestoreSession(ctx context.Context, auth service.AuthService) tea.Cmd {
	return func() tea.Msg {
		return sessionRestoredMsg{err: auth.RestoreSession(ctx)}
	}
}

func cmdBeginLogin(ctx context.Context, flow *oauthFlow) tea.Cmd {
	return func() tea.Msg {
		url, err := flow.begin(ctx)
		return loginURLMsg{url: url, err: err}
	}
}

func cmdAwaitLogin(ctx context.Context, flow *oauthFlow) tea.Cmd {
	return func() tea.Msg {
		user, err := flow.await(ctx)
		return loginDoneMsg{user: user, err: err}
	}
}

func cmdExchangeCode(ctx context.Context, auth service.AuthService, code string) tea.Cmd {
	return func() tea.Msg {
		user, err := auth.CompleteOAuth(ctx, code)
		return loginDoneMsg{user: user, err: err}
	}
}

func cmdDevLogin(ctx context.Context, auth service.AuthService) tea.Cmd {
	return func() tea.Msg {
		user, err := auth.DevLogin(ctx)
		return loginDoneMsg{user: user, err: err}
	}
}

func cmdLogout(ctx context.Context, auth service.AuthService) tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func cmdAsk(ctx context.Context, chat service.ChatService, question string) tea.Cmd {
	return func() tea.Msg {
		_, err := chat.Ask(ctx, question)
		return answerMsg{err: err}
	}
}

func cmdLoadHistory(ctx context.Context, chat service.ChatService) tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{err: chat.LoadHistory(ctx)}
	}
}

func cmdDeleteConversation(ctx context.Context, chat service.ChatService, id models.ID) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{status: "Conversation deleted", err: chat.DeleteConversation(ctx, id)}
	}
}

func cmdReloadDocuments(ctx context.Context, knowledge service.KnowledgeService) tea.Cmd {
	return func() tea.Msg {
		return documentsLoadedMsg{err: knowledge.Reload(ctx)}
	}
}

func cmdUpload(ctx context.Context, knowledge service.KnowledgeService, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := knowledge.Upload(ctx, path)
		return uploadDoneMsg{doc: doc, err: err}
	}
}

func cmdDeleteDocument(ctx context.Context, knowledge service.KnowledgeService, id models.ID) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{status: "Document deleted", err: knowledge.Delete(ctx, id)}
	}
}

func cmdSearchKnowledge(ctx context.Context, knowledge service.KnowledgeService, query string) tea.Cmd {
	return func() tea.Msg {
		res, err := knowledge.Search(ctx, query, 0)
		return searchDoneMsg{results: res, err: err}
	}
}

func cmdKnowledgeStats(ctx context.Context, system service.SystemService) tea.Cmd {
	return func() tea.Msg {
		stats, err := system.Stats(ctx)
		return statsMsg{stats: stats, err: err}
	}
}

func cmdEmailStatus(ctx context.Context, email service.EmailService) tea.Cmd {
	return func() tea.Msg {
		status, err := email.Status(ctx)
		return emailStatusMsg{status: status, err: err}
	}
}

func cmdRecentEmails(ctx context.Context, email service.EmailService) tea.Cmd {
	return func() tea.Msg {
		list, err := email.Recent(ctx, 0)
		return emailListMsg{list: list, err: err}
	}
}

func cmdSearchEmails(ctx context.Context, email service.EmailService, keyword string) tea.Cmd {
	return func() tea.Msg {
		list, err := email.Search(ctx, keyword, 0)
		return emailListMsg{list: list, err: err}
	}
}

func cmdConnectEmail(ctx context.Context, auth service.AuthService, open func(string) error) tea.Cmd {
	return func() tea.Msg {
		url, err := auth.EmailConnectURL(ctx)
		if err == nil && open != nil {
			_ = open(url)
		}
		return connectURLMsg{url: url, err: err}
	}
}

func cmdSystemInfo(ctx context.Context, system service.SystemService, fresh bool) tea.Cmd {
	return func() tea.Msg {
		if fresh {
			system.Invalidate()
		}
		health, err := system.Health(ctx)
		if err != nil {
			return systemInfoMsg{err: err}
		}
		info, err := system.Info(ctx)
		return systemInfoMsg{health: health, info: info, err: err}
	}
}

func cmdCopy(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: what + " copied to clipboard"}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
