package models

// User is the signed-in account as returned by the identity endpoints.
// A non-nil *User is the only source of the client's authenticated flag.
type User struct {
	// ID is the backend identifier of the account.
	ID ID `json:"id"`

	// Email is the university mailbox address used to sign in.
	Email string `json:"email"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// AvatarURL is an optional profile picture location.
	AvatarURL string `json:"avatar_url,omitempty"`

	// EmailConnected reports whether the mailbox integration has been
	// authorised, which enables the email pages and email sources in chat.
	EmailConnected bool `json:"email_connected"`
}

// Clone returns a copy of u, or nil when u is nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// LoginResult is the payload returned by the OAuth callback and the
// developer login endpoints.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// SessionCookieToken is the token value the backend returns when it
// authenticates through its session cookie rather than a bearer token.
const SessionCookieToken = "session"

// HasBearerToken reports whether the login produced a token that has to be
// sent in the Authorization header.
func (l LoginResult) HasBearerToken() bool {
	return l.Token != "" && l.Token != SessionCookieToken
}

// LoginURL is the payload of GET /api/auth/login.
type LoginURL struct {
	AuthURL string `json:"auth_url"`
}
