package store

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/MKhiriev/go-campus-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Well-known keys of the durable local storage.
const (
	KeyAccessToken    = "access_token"
	KeyRefreshToken   = "refresh_token"
	KeyUser           = "user"
	KeySessionCookies = "session_cookies"
)

// LocalStorage is a durable string key/value store that survives client
// restarts. It plays the role the browser's localStorage plays for a web
// client: credentials and the persisted part of the client state live here.
type LocalStorage interface {
	// GetItem returns the value stored under key. ok is false when the key
	// is absent; that is not an error.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// CredentialStore is the typed view over [LocalStorage] used for the
// session credentials: the token pair, the signed-in user and the backend
// session cookies.
type CredentialStore interface {
	// Token returns the stored token pair, or nil when no access token and no
	// refresh token are stored.
	Token(ctx context.Context) (*oauth2.Token, error)

	// SaveToken stores the token pair. An empty RefreshToken keeps the
	// refresh token already stored.
	SaveToken(ctx context.Context, token *oauth2.Token) error

	// User returns the stored user, or nil when none is stored or the stored
	// value cannot be decoded.
	User(ctx context.Context) (*models.User, error)

	// SaveUser stores user; nil removes it.
	SaveUser(ctx context.Context, user *models.User) error

	// Cookies returns the persisted backend session cookies.
	Cookies(ctx context.Context) ([]*http.Cookie, error)

	// SaveCookies replaces the persisted backend session cookies.
	SaveCookies(ctx context.Context, cookies []*http.Cookie) error

	// Clear removes the token pair, the user and the session cookies.
	Clear(ctx context.Context) error
}
