package models

import (
	"time"

	"golang.org/x/oauth2"
)

// TokenResponse is the payload returned by POST /api/auth/refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// OAuth2Token converts the refresh payload into the credential pair the
// client keeps in durable storage. now is used to resolve ExpiresIn.
func (t TokenResponse) OAuth2Token(now time.Time) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
	}
	if tok.TokenType == "" {
		tok.TokenType = "Bearer"
	}
	if t.ExpiresIn > 0 {
		tok.Expiry = now.Add(time.Duration(t.ExpiresIn) * time.Second)
	}
	return tok
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
