package adapter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-campus-assistant/models"
)

// LoginURL implements [ServerAdapter] via GET /api/auth/login.
func (h *httpServerAdapter) LoginURL(ctx context.Context, redirectURI string) (models.LoginURL, error) {
	var opts []RequestOption
	if redirectURI != "" {
		opts = append(opts, WithQuery("redirect_uri", redirectURI))
	}

	data, err := h.Do(ctx, http.MethodGet, "/api/auth/login", nil, opts...)
	if err != nil {
		return models.LoginURL{}, err
	}
	return decodeData[models.LoginURL](data)
}

// ExchangeCode implements [ServerAdapter] via GET /api/auth/callback.
//
// The backend answers either with a {user, token} envelope or with a
// redirect that sets its session cookie. In the second case the identity is
// fetched separately and the cookie-session token marker is returned. A
// redirect that carries an error query parameter is an AuthError.
func (h *httpServerAdapter) ExchangeCode(ctx context.Context, code string) (models.LoginResult, error) {
	o := newRequestOptions([]RequestOption{WithQuery("code", code), WithoutRecovery()})

	resp, err := h.send(ctx, http.MethodGet, callbackPath, nil, o)
	if err != nil {
		return models.LoginResult{}, err
	}

	var result models.LoginResult
	if resp.StatusCode() >= http.StatusMultipleChoices && resp.StatusCode() < http.StatusBadRequest {
		if msg := redirectError(resp.Header().Get("Location")); msg != "" {
			return models.LoginResult{}, &APIError{
				Kind:    KindAuth,
				Code:    http.StatusUnauthorized,
				Message: msg,
				Status:  resp.StatusCode(),
			}
		}

		user, err := h.CurrentUser(ctx)
		if err != nil {
			return models.LoginResult{}, err
		}
		result = models.LoginResult{User: user, Token: models.SessionCookieToken}
	} else {
		data, err := mapResponse(resp)
		if err != nil {
			return models.LoginResult{}, err
		}
		if result, err = decodeData[models.LoginResult](data); err != nil {
			return models.LoginResult{}, err
		}
	}

	if err = h.storeLogin(ctx, result); err != nil {
		return models.LoginResult{}, err
	}
	return result, nil
}

func redirectError(location string) string {
	if location == "" {
		return ""
	}
	u, err := url.Parse(location)
	if err != nil {
		return ""
	}
	return u.Query().Get("error")
}

// CurrentUser implements [ServerAdapter] via GET /api/auth/me.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	data, err := h.Do(ctx, http.MethodGet, identityPath, nil)
	if err != nil {
		return models.User{}, err
	}
	return decodeData[models.User](data)
}

// DevLogin implements [ServerAdapter] via POST /api/auth/dev-login.
func (h *httpServerAdapter) DevLogin(ctx context.Context) (models.LoginResult, error) {
	data, err := h.Do(ctx, http.MethodPost, "/api/auth/dev-login", nil, WithoutRecovery())
	if err != nil {
		return models.LoginResult{}, err
	}

	result, err := decodeData[models.LoginResult](data)
	if err != nil {
		return models.LoginResult{}, err
	}
	if err = h.storeLogin(ctx, result); err != nil {
		return models.LoginResult{}, err
	}
	return result, nil
}

// Logout implements [ServerAdapter] via POST /api/auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	_, reqErr := h.Do(ctx, http.MethodPost, "/api/auth/logout", nil, WithoutRecovery())

	// an explicit logout must not trigger a login redirect later
	h.expired.Store(true)
	if err := h.clearCredentials(ctx); err != nil {
		return err
	}
	return reqErr
}

// EmailConnectURL implements [ServerAdapter]. Mailbox access is granted by
// the same consent flow as sign-in.
func (h *httpServerAdapter) EmailConnectURL(ctx context.Context) (models.LoginURL, error) {
	return h.LoginURL(ctx, "")
}
