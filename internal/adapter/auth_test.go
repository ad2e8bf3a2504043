package adapter

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campus-assistant/internal/config"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/models"
)

func TestDevLogin_SessionTokenIsNotStored(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/dev-login", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, 0, "Developer login successful", map[string]any{
			"user":  map[string]any{"id": 1, "email": "developer@test.edu", "name": "Developer User"},
			"token": "session",
		})
	}))
	ctx := context.Background()

	res, err := env.adapter.DevLogin(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), res.User.ID)

	tok, err := env.credentials.Token(ctx)
	require.NoError(t, err)
	assert.Nil(t, tok)

	user, err := env.credentials.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "developer@test.edu", user.Email)
}

func TestDevLogin_BearerTokenIsStored(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, 0, "OK", map[string]any{
			"user":  map[string]any{"id": "u-1", "email": "s@campus.edu", "name": "S"},
			"token": "jwt-access",
		})
	}))
	ctx := context.Background()

	_, err := env.adapter.DevLogin(ctx)
	require.NoError(t, err)

	tok, err := env.credentials.Token(ctx)
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, "jwt-access", tok.AccessToken)
}

func TestDevLogin_Forbidden(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusForbidden, 403, "Developer login is only available in debug mode", nil)
	}))

	_, err := env.adapter.DevLogin(context.Background())
	require.ErrorIs(t, err, ErrHTTP)
	assert.Equal(t, 403, Normalize(err).Code)
}

func TestExchangeCode_CookieSessionRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/callback", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "auth-code", r.URL.Query().Get("code"))
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "cookie-1", Path: "/"})
		http.Redirect(w, r, "http://localhost:3000/auth/callback", http.StatusFound)
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		if err != nil || c.Value != "cookie-1" {
			writeEnvelope(t, w, http.StatusUnauthorized, 401, "Not authenticated", nil)
			return
		}
		writeEnvelope(t, w, http.StatusOK, 0, "OK", map[string]any{
			"id": 5, "email": "s@campus.edu", "name": "Student", "email_connected": true,
		})
	})

	env := newTestEnv(t, mux)
	ctx := context.Background()

	res, err := env.adapter.ExchangeCode(ctx, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, models.SessionCookieToken, res.Token)
	assert.Equal(t, models.ID("5"), res.User.ID)
	assert.True(t, res.User.EmailConnected)

	cookies, err := env.credentials.Cookies(ctx)
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "cookie-1", cookies[0].Value)

	user, err := env.credentials.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Student", user.Name)
}

func TestExchangeCode_RedirectWithError(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://localhost:3000/login?error=Missing%20authorization%20code", http.StatusFound)
	}))

	_, err := env.adapter.ExchangeCode(context.Background(), "")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Missing authorization code", Normalize(err).Message)
	assert.Zero(t, env.redirects.Load())
}

func TestExchangeCode_Envelope(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, 0, "OK", map[string]any{
			"user":  map[string]any{"id": 9, "email": "s@campus.edu", "name": "S"},
			"token": "access-9",
		})
	}))
	ctx := context.Background()

	res, err := env.adapter.ExchangeCode(ctx, "code")
	require.NoError(t, err)
	assert.Equal(t, "access-9", res.Token)

	tok, err := env.credentials.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-9", tok.AccessToken)
}

func TestLogout_ClearsCredentialsEvenOnFailure(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusInternalServerError, 500, "boom", nil)
	}))
	ctx := context.Background()
	env.saveTokens(t, "a", "r")
	require.NoError(t, env.credentials.SaveUser(ctx, &models.User{ID: "1"}))

	err := env.adapter.Logout(ctx)
	require.ErrorIs(t, err, ErrHTTP)

	tok, _ := env.credentials.Token(ctx)
	assert.Nil(t, tok)
	user, _ := env.credentials.User(ctx)
	assert.Nil(t, user)
	assert.Zero(t, env.redirects.Load())
}

func TestLogout_UnauthorizedDoesNotRedirect(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, 401, "Not authenticated", nil)
	}))

	err := env.adapter.Logout(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, env.redirects.Load())
}

func TestNewHTTPServerAdapter_RestoresCookies(t *testing.T) {
	var seen string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			seen = c.Value
		}
		writeEnvelope(t, w, http.StatusOK, 0, "OK", map[string]any{"id": 1})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()

	require.NoError(t, env.credentials.SaveCookies(ctx, []*http.Cookie{{Name: "session", Value: "persisted", Path: "/"}}))

	a, err := NewHTTPServerAdapter(ctx, config.ClientAdapter{HTTPAddress: env.server.URL},
		env.credentials, nil, logger.Nop())
	require.NoError(t, err)

	_, err = a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", seen)
}

func TestLoginURL(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, 0, "OK", map[string]any{
			"auth_url":     "https://login.example.com/authorize?state=x",
			"redirect_uri": r.URL.Query().Get("redirect_uri"),
		})
	}))

	u, err := env.adapter.LoginURL(context.Background(), "http://127.0.0.1:8765/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://login.example.com/authorize?state=x", u.AuthURL)

	u, err = env.adapter.EmailConnectURL(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, u.AuthURL)
}
