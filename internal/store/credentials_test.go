package store

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/MKhiriev/go-campus-assistant/models"
)

func newTestCredentials(t *testing.T) (CredentialStore, LocalStorage) {
	t.Helper()
	local, err := NewFileLocalStorage(MemoryDSN)
	require.NoError(t, err)
	return NewCredentialStore(local), local
}

func TestCredentialStore_TokenEmpty(t *testing.T) {
	creds, _ := newTestCredentials(t)

	tok, err := creds.Token(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestCredentialStore_SaveToken(t *testing.T) {
	ctx := context.Background()
	creds, local := newTestCredentials(t)

	require.NoError(t, creds.SaveToken(ctx, &oauth2.Token{AccessToken: "a1", RefreshToken: "r1"}))

	v, _, _ := local.GetItem(ctx, KeyAccessToken)
	assert.Equal(t, "a1", v)
	v, _, _ = local.GetItem(ctx, KeyRefreshToken)
	assert.Equal(t, "r1", v)

	// a refresh response without a new refresh token keeps the old one
	require.NoError(t, creds.SaveToken(ctx, &oauth2.Token{AccessToken: "a2"}))

	tok, err := creds.Token(ctx)
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, "a2", tok.AccessToken)
	assert.Equal(t, "r1", tok.RefreshToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.True(t, tok.Expiry.IsZero())

	require.NoError(t, creds.SaveToken(ctx, nil))
}

func TestCredentialStore_TokenExpiryFromJWT(t *testing.T) {
	ctx := context.Background()
	creds, _ := newTestCredentials(t)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	require.NoError(t, creds.SaveToken(ctx, &oauth2.Token{AccessToken: access}))

	tok, err := creds.Token(ctx)
	require.NoError(t, err)
	assert.True(t, tok.Expiry.Equal(exp))
}

func TestCredentialStore_User(t *testing.T) {
	ctx := context.Background()
	creds, local := newTestCredentials(t)

	u, err := creds.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	want := &models.User{ID: "7", Email: "s@campus.edu", Name: "Student"}
	require.NoError(t, creds.SaveUser(ctx, want))

	got, err := creds.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, local.SetItem(ctx, KeyUser, "{broken"))
	got, err = creds.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, creds.SaveUser(ctx, nil))
	_, ok, _ := local.GetItem(ctx, KeyUser)
	assert.False(t, ok)
}

func TestCredentialStore_Cookies(t *testing.T) {
	ctx := context.Background()
	creds, local := newTestCredentials(t)

	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []*http.Cookie{
		{Name: "session", Value: "abc", Path: "/", Domain: "localhost", Expires: expires, HttpOnly: true},
	}
	require.NoError(t, creds.SaveCookies(ctx, in))

	out, err := creds.Cookies(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "session", out[0].Name)
	assert.Equal(t, "abc", out[0].Value)
	assert.Equal(t, "/", out[0].Path)
	assert.True(t, out[0].Expires.Equal(expires))
	assert.True(t, out[0].HttpOnly)

	require.NoError(t, creds.SaveCookies(ctx, nil))
	_, ok, _ := local.GetItem(ctx, KeySessionCookies)
	assert.False(t, ok)
}

func TestCredentialStore_Clear(t *testing.T) {
	ctx := context.Background()
	creds, local := newTestCredentials(t)

	require.NoError(t, local.SetItem(ctx, "campus-assistant-storage", "{}"))
	require.NoError(t, creds.SaveToken(ctx, &oauth2.Token{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, creds.SaveUser(ctx, &models.User{ID: "1"}))
	require.NoError(t, creds.SaveCookies(ctx, []*http.Cookie{{Name: "session", Value: "v"}}))

	require.NoError(t, creds.Clear(ctx))

	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyUser, KeySessionCookies} {
		_, ok, err := local.GetItem(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	v, ok, err := local.GetItem(ctx, "campus-assistant-storage")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", v)
}
