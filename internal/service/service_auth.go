package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/models"
)

type authService struct {
	adapter     adapter.ServerAdapter
	store       *state.Store
	redirectURI string
	logger      *logger.Logger
}

// NewAuthService creates an AuthService. redirectURI is the callback the
// identity provider should return to and may be empty.
func NewAuthService(serverAdapter adapter.ServerAdapter, store *state.Store, redirectURI string, log *logger.Logger) AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &authService{
		adapter:     serverAdapter,
		store:       store,
		redirectURI: redirectURI,
		logger:      log.WithComponent("auth"),
	}
}

func (a *authService) LoginURL(ctx context.Context) (string, error) {
	login, err := a.adapter.LoginURL(ctx, a.redirectURI)
	if err != nil {
		return "", fmt.Errorf("request login url: %w", err)
	}
	if login.AuthURL == "" {
		return "", ErrNoLoginURL
	}
	return login.AuthURL, nil
}

func (a *authService) CompleteOAuth(ctx context.Context, code string) (models.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.User{}, ErrEmptyAuthCode
	}

	result, err := a.adapter.ExchangeCode(ctx, code)
	if err != nil {
		return models.User{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	user := result.User
	if user.ID == "" {
		user, err = a.adapter.CurrentUser(ctx)
		if err != nil {
			return models.User{}, fmt.Errorf("fetch signed-in user: %w", err)
		}
	}

	a.store.SetUser(&user)
	a.logger.Info().Str("user_id", user.ID.String()).Msg("signed in")
	return user, nil
}

func (a *authService) DevLogin(ctx context.Context) (models.User, error) {
	result, err := a.adapter.DevLogin(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("developer login: %w", err)
	}

	a.store.SetUser(&result.User)
	a.logger.Info().Str("user_id", result.User.ID.String()).Msg("signed in as developer")
	return result.User, nil
}

func (a *authService) RestoreSession(ctx context.Context) error {
	user, err := a.adapter.CurrentUser(ctx)
	switch {
	case err == nil:
		a.store.SetUser(&user)
		return nil
	case errors.Is(err, adapter.ErrUnauthorized):
		a.logger.Debug().Err(err).Msg("stored session is no longer valid")
		a.store.SetUser(nil)
		return nil
	default:
		return fmt.Errorf("check session: %w", err)
	}
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("backend logout failed, local session cleared anyway")
	}

	a.store.SetUser(nil)
	a.store.ClearMessages()
	a.store.SetConversations(nil)
	a.store.SetDocuments(nil)
	return nil
}

func (a *authService) EmailConnectURL(ctx context.Context) (string, error) {
	login, err := a.adapter.EmailConnectURL(ctx)
	if err != nil {
		return "", fmt.Errorf("request email connect url: %w", err)
	}
	if login.AuthURL == "" {
		return "", ErrNoLoginURL
	}
	return login.AuthURL, nil
}
