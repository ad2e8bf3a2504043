// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the session-aware API client of the campus assistant
// backend.
//
// [ServerAdapter] is the single point of outbound calls. Every request
// carries the stored bearer token and the backend session cookies. A 401
// answer is recovered centrally: the client refreshes the token pair and
// re-issues the request once, or clears the stored credentials and asks the
// injected [Navigator] to show the login entry point.
//
// All failures are returned as [*APIError], a normalized {code, message}
// value whose Kind tells network failures, timeouts, authentication
// failures, HTTP errors and application errors apart. The sentinel errors in
// errors.go make [errors.Is] classification work.
package adapter

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/go-campus-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the campus assistant backend.
// Implementations manage credentials and map transport failures to
// [*APIError].
type ServerAdapter interface {
	// Do issues an arbitrary request and returns the data member of the
	// response envelope. body is sent as JSON when non-nil.
	Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (json.RawMessage, error)

	// LoginURL returns the identity provider URL the user has to open.
	// redirectURI is forwarded as a hint and may be empty.
	LoginURL(ctx context.Context, redirectURI string) (models.LoginURL, error)

	// ExchangeCode completes the OAuth flow with the authorization code and
	// stores the resulting credentials.
	ExchangeCode(ctx context.Context, code string) (models.LoginResult, error)

	// CurrentUser fetches the signed-in identity. A 401 is returned as an
	// AuthError without refresh or redirect.
	CurrentUser(ctx context.Context) (models.User, error)

	// DevLogin signs in as the backend's developer user and stores the
	// resulting credentials.
	DevLogin(ctx context.Context) (models.LoginResult, error)

	// Logout ends the backend session. Local credentials are cleared even
	// when the request fails.
	Logout(ctx context.Context) error

	// Refresh exchanges the stored refresh token for a new token pair.
	Refresh(ctx context.Context) error

	// Ask sends a question to the assistant.
	Ask(ctx context.Context, query models.ChatQuery) (models.ChatAnswer, error)

	// History returns the stored question/answer history.
	History(ctx context.Context) (models.History, error)

	// DeleteHistory deletes one history item.
	DeleteHistory(ctx context.Context, id models.ID) error

	// UploadDocument uploads a file into the knowledge base.
	UploadDocument(ctx context.Context, filename string, r io.Reader) (models.Document, error)

	// Documents lists the knowledge base documents.
	Documents(ctx context.Context) (models.DocumentList, error)

	// DeleteDocument removes a document from the knowledge base.
	DeleteDocument(ctx context.Context, id models.ID) error

	// SearchDocuments runs a similarity search over the knowledge base.
	SearchDocuments(ctx context.Context, req models.SearchRequest) (models.SearchResults, error)

	// KnowledgeStats returns document and vector counts.
	KnowledgeStats(ctx context.Context) (models.KnowledgeStats, error)

	// EmailStatus reports whether the mailbox is connected.
	EmailStatus(ctx context.Context) (models.EmailStatus, error)

	// RecentEmails returns up to top recent messages.
	RecentEmails(ctx context.Context, top int) (models.EmailList, error)

	// SearchEmails searches the mailbox by keyword.
	SearchEmails(ctx context.Context, req models.EmailSearchRequest) (models.EmailList, error)

	// EmailConnectURL returns the URL that grants mailbox access.
	EmailConnectURL(ctx context.Context) (models.LoginURL, error)

	// Health returns the backend health report.
	Health(ctx context.Context) (models.Health, error)

	// ServiceInfo returns the backend banner.
	ServiceInfo(ctx context.Context) (models.ServiceInfo, error)
}

// Navigator is the UI capability the client uses when a session cannot be
// recovered.
type Navigator interface {
	// RedirectToLogin shows the login entry point.
	RedirectToLogin()
}

// NavigatorFunc adapts a plain function to [Navigator].
type NavigatorFunc func()

// RedirectToLogin calls f.
func (f NavigatorFunc) RedirectToLogin() { f() }
