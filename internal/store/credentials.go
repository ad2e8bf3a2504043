package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/utils"
	"github.com/MKhiriev/go-campus-assistant/models"
)

type credentialStore struct {
	storage LocalStorage
}

// NewCredentialStore returns a [CredentialStore] that keeps each credential
// under its well-known key in storage.
func NewCredentialStore(storage LocalStorage) CredentialStore {
	return &credentialStore{storage: storage}
}

func (c *credentialStore) Token(ctx context.Context) (*oauth2.Token, error) {
	access, hasAccess, err := c.storage.GetItem(ctx, KeyAccessToken)
	if err != nil {
		return nil, err
	}
	refresh, hasRefresh, err := c.storage.GetItem(ctx, KeyRefreshToken)
	if err != nil {
		return nil, err
	}
	if !hasAccess && !hasRefresh {
		return nil, nil
	}

	token := &oauth2.Token{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}
	// opaque tokens carry no expiry
	if exp, expErr := utils.TokenExpiry(access); expErr == nil {
		token.Expiry = exp
	}

	return token, nil
}

func (c *credentialStore) SaveToken(ctx context.Context, token *oauth2.Token) error {
	if token == nil {
		return nil
	}

	if token.AccessToken != "" {
		if err := c.storage.SetItem(ctx, KeyAccessToken, token.AccessToken); err != nil {
			return err
		}
	}
	if token.RefreshToken != "" {
		if err := c.storage.SetItem(ctx, KeyRefreshToken, token.RefreshToken); err != nil {
			return err
		}
	}

	return nil
}

func (c *credentialStore) User(ctx context.Context) (*models.User, error) {
	raw, ok, err := c.storage.GetItem(ctx, KeyUser)
	if err != nil || !ok {
		return nil, err
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "credentialStore.User").
			Msg("stored user is not valid JSON, ignoring")
		return nil, nil
	}

	return &user, nil
}

func (c *credentialStore) SaveUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return c.storage.RemoveItem(ctx, KeyUser)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return c.storage.SetItem(ctx, KeyUser, string(raw))
}

// storedCookie is the persisted form of an http.Cookie. Only the fields a
// cookie jar needs to replay the cookie are kept.
type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitzero"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

func (c *credentialStore) Cookies(ctx context.Context) ([]*http.Cookie, error) {
	raw, ok, err := c.storage.GetItem(ctx, KeySessionCookies)
	if err != nil || !ok {
		return nil, err
	}

	var stored []storedCookie
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "credentialStore.Cookies").
			Msg("stored cookies are not valid JSON, ignoring")
		return nil, nil
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		cookies = append(cookies, &http.Cookie{
			Name:     s.Name,
			Value:    s.Value,
			Path:     s.Path,
			Domain:   s.Domain,
			Expires:  s.Expires,
			Secure:   s.Secure,
			HttpOnly: s.HttpOnly,
		})
	}
	return cookies, nil
}

func (c *credentialStore) SaveCookies(ctx context.Context, cookies []*http.Cookie) error {
	if len(cookies) == 0 {
		return c.storage.RemoveItem(ctx, KeySessionCookies)
	}

	stored := make([]storedCookie, 0, len(cookies))
	for _, ck := range cookies {
		stored = append(stored, storedCookie{
			Name:     ck.Name,
			Value:    ck.Value,
			Path:     ck.Path,
			Domain:   ck.Domain,
			Expires:  ck.Expires,
			Secure:   ck.Secure,
			HttpOnly: ck.HttpOnly,
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode cookies: %w", err)
	}
	return c.storage.SetItem(ctx, KeySessionCookies, string(raw))
}

// Clear removes every credential key. All removals are attempted even when
// one fails.
func (c *credentialStore) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyUser, KeySessionCookies} {
		if err := c.storage.RemoveItem(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
