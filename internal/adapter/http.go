package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-campus-assistant/internal/config"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/store"
	"github.com/MKhiriev/go-campus-assistant/internal/utils"
	"github.com/MKhiriev/go-campus-assistant/models"
)

// Backend paths with special handling.
const (
	identityPath = "/api/auth/me"
	refreshPath  = "/api/auth/refresh"
	callbackPath = "/api/auth/callback"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	credentials store.CredentialStore
	navigator   Navigator

	refreshGroup singleflight.Group
	// expired is set once the session was given up and the navigator was
	// called; a new login resets it.
	expired atomic.Bool

	cookieMu     sync.Mutex
	cookieDigest string

	logger *logger.Logger
	now    func() time.Time
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises cfg.HTTPAddress, restores the persisted session cookies and
// wires navigator as the login redirect. A nil navigator disables the
// redirect.
//
// Returns an error if the address cannot be parsed as a URL.
func NewHTTPServerAdapter(
	ctx context.Context,
	cfg config.ClientAdapter,
	credentials store.CredentialStore,
	navigator Navigator,
	log *logger.Logger,
) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if navigator == nil {
		navigator = NavigatorFunc(func() {})
	}
	if log == nil {
		log = logger.Nop()
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	h := &httpServerAdapter{
		client:      utils.NewHTTPClient(baseURL.String(), timeout),
		baseURL:     baseURL,
		credentials: credentials,
		navigator:   navigator,
		logger:      log.WithComponent("adapter"),
		now:         time.Now,
	}
	h.client.SetRedirectPolicy(callbackRedirectPolicy())

	if err = h.restoreCookies(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "NewHTTPServerAdapter").Msg("failed to restore session cookies")
	}

	return h, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("address must include host and scheme")
	}
	u.Path = strings.TrimRight(u.Path, "/")

	return u, nil
}

// Do implements [ServerAdapter].
//
// A stored access token that has already expired is refreshed before the
// request is sent, when a refresh token is available.
//
// A 401 on any path but the identity check triggers one refresh. On success
// the request is re-issued once; on failure the credentials are cleared and
// the navigator is called. The original AuthError is returned in that case.
func (h *httpServerAdapter) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (json.RawMessage, error) {
	o := newRequestOptions(opts)

	if h.recoverable(ctx, path, o) && h.tokenExpired(ctx) {
		if refreshErr := h.recoverSession(ctx); refreshErr != nil {
			h.logger.Debug().Err(refreshErr).
				Str("func", "httpServerAdapter.Do").
				Str("path", path).
				Msg("expired token could not be refreshed")
			return nil, &APIError{
				Kind:    KindAuth,
				Code:    http.StatusUnauthorized,
				Message: "session expired",
				err:     refreshErr,
			}
		}
		return h.retry(ctx, method, path, body, o)
	}

	data, err := h.do(ctx, method, path, body, o)
	if err == nil || !errors.Is(err, ErrUnauthorized) || !h.recoverable(ctx, path, o) {
		return data, err
	}

	if refreshErr := h.recoverSession(ctx); refreshErr != nil {
		h.logger.Debug().Err(refreshErr).
			Str("func", "httpServerAdapter.Do").
			Str("path", path).
			Msg("session recovery failed")
		return nil, err
	}

	return h.retry(ctx, method, path, body, o)
}

// retry sends the request with the refreshed token. It is never recovered
// again; a rejection expires the session.
func (h *httpServerAdapter) retry(ctx context.Context, method, path string, body any, o *requestOptions) (json.RawMessage, error) {
	data, err := h.do(utils.WithRetried(ctx), method, path, body, o)
	if err != nil && errors.Is(err, ErrUnauthorized) {
		// a fresh token was rejected too
		h.expireSession(ctx)
	}
	return data, err
}

// tokenExpired reports whether the stored access token is past its exp
// claim while a refresh token is at hand. Opaque tokens never expire here.
func (h *httpServerAdapter) tokenExpired(ctx context.Context) bool {
	tok, err := h.credentials.Token(ctx)
	if err != nil || tok == nil || tok.RefreshToken == "" {
		return false
	}
	return !tok.Valid()
}

func (h *httpServerAdapter) do(ctx context.Context, method, path string, body any, o *requestOptions) (json.RawMessage, error) {
	resp, err := h.send(ctx, method, path, body, o)
	if err != nil {
		return nil, err
	}
	return mapResponse(resp)
}

func (h *httpServerAdapter) recoverable(ctx context.Context, path string, o *requestOptions) bool {
	if o.skipRecovery || utils.IsRetried(ctx) {
		return false
	}
	return !isIdentityCheck(path)
}

func isIdentityCheck(path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return strings.TrimRight(path, "/") == identityPath
}

// recoverSession refreshes the token pair. Concurrent callers share one
// refresh; a failed refresh expires the session exactly once.
func (h *httpServerAdapter) recoverSession(ctx context.Context) error {
	_, err, _ := h.refreshGroup.Do("refresh", func() (any, error) {
		if h.expired.Load() {
			return nil, ErrUnauthorized
		}
		if err := h.Refresh(ctx); err != nil {
			h.expireSession(ctx)
			return nil, err
		}
		return nil, nil
	})
	return err
}

// expireSession clears the stored credentials and redirects to login. It
// acts only on the first call after a login.
func (h *httpServerAdapter) expireSession(ctx context.Context) {
	if !h.expired.CompareAndSwap(false, true) {
		return
	}

	if err := h.clearCredentials(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.expireSession").Msg("failed to clear credentials")
	}
	h.logger.Info().Msg("session expired, redirecting to login")
	h.navigator.RedirectToLogin()
}

func (h *httpServerAdapter) clearCredentials(ctx context.Context) error {
	h.resetCookies()
	return h.credentials.Clear(ctx)
}

// Refresh implements [ServerAdapter]. It posts the stored refresh token to
// POST /api/auth/refresh and stores the returned pair. A response without a
// refresh token keeps the stored one.
func (h *httpServerAdapter) Refresh(ctx context.Context) error {
	tok, err := h.credentials.Token(ctx)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if tok == nil || tok.RefreshToken == "" {
		return &APIError{
			Kind:    KindAuth,
			Code:    http.StatusUnauthorized,
			Message: ErrNoRefreshToken.Error(),
			Status:  http.StatusUnauthorized,
			err:     ErrNoRefreshToken,
		}
	}

	data, err := h.Do(ctx, http.MethodPost, refreshPath,
		models.RefreshRequest{RefreshToken: tok.RefreshToken}, WithoutRecovery())
	if err != nil {
		return err
	}

	resp, err := decodeData[models.TokenResponse](data)
	if err != nil {
		return err
	}
	if resp.AccessToken == "" {
		return &APIError{Kind: KindAuth, Code: http.StatusUnauthorized, Message: "refresh returned no access token"}
	}

	if err = h.credentials.SaveToken(ctx, resp.OAuth2Token(h.now())); err != nil {
		return fmt.Errorf("store refreshed token: %w", err)
	}
	h.expired.Store(false)

	h.logger.Debug().Str("func", "httpServerAdapter.Refresh").Msg("token pair refreshed")
	return nil
}

// storeLogin persists the credentials of a successful login.
func (h *httpServerAdapter) storeLogin(ctx context.Context, result models.LoginResult) error {
	if result.HasBearerToken() {
		if err := h.credentials.SaveToken(ctx, &oauth2.Token{AccessToken: result.Token, TokenType: "Bearer"}); err != nil {
			return fmt.Errorf("store access token: %w", err)
		}
	}
	if err := h.credentials.SaveUser(ctx, &result.User); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	h.expired.Store(false)
	return nil
}
