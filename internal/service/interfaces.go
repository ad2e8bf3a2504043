// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-campus-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService drives sign-in and sign-out. Every method keeps the state
// store in step with the session: the user is set on success and cleared
// when the session is gone.
type AuthService interface {
	// LoginURL returns the identity provider URL the user has to open. The
	// configured callback address is sent as the redirect hint.
	LoginURL(ctx context.Context) (string, error)

	// CompleteOAuth exchanges the authorization code delivered to the
	// callback and signs the user in.
	CompleteOAuth(ctx context.Context, code string) (models.User, error)

	// DevLogin signs in as the backend's developer account.
	DevLogin(ctx context.Context) (models.User, error)

	// RestoreSession checks the stored session on startup. An expired
	// session signs the user out locally without redirecting; any other
	// failure keeps the hydrated user and is returned.
	RestoreSession(ctx context.Context) error

	// Logout ends the backend session, clears local credentials and resets
	// the user-specific state. The backend call is best effort.
	Logout(ctx context.Context) error

	// EmailConnectURL returns the URL that grants mailbox access.
	EmailConnectURL(ctx context.Context) (string, error)
}

// ChatService runs the conversation with the assistant over the message
// buffer of the state store.
type ChatService interface {
	// Ask appends the question and the assistant's answer to the buffer and
	// returns the answer. When the backend fails an apology is appended
	// instead and the error is returned.
	Ask(ctx context.Context, question string) (models.Message, error)

	// NewChat drops the active conversation and its messages.
	NewChat()

	// LoadHistory refreshes the conversation list.
	LoadHistory(ctx context.Context) error

	// OpenConversation makes a loaded conversation active.
	OpenConversation(id models.ID) error

	// DeleteConversation deletes a history entry and reloads the list.
	DeleteConversation(ctx context.Context, id models.ID) error
}

// KnowledgeService manages the knowledge base documents. The document list
// in the state store is always replaced with the latest fetched snapshot.
type KnowledgeService interface {
	// Upload sends the file at path and reloads the document list.
	Upload(ctx context.Context, path string) (models.Document, error)

	// Reload refetches the document list.
	Reload(ctx context.Context) error

	// Delete removes a document and reloads the list.
	Delete(ctx context.Context, id models.ID) error

	// Search runs a similarity search. topK 0 selects the default; a
	// negative topK is rejected.
	Search(ctx context.Context, query string, topK int) (models.SearchResults, error)

	// Stats returns fresh document and vector counts.
	Stats(ctx context.Context) (models.KnowledgeStats, error)

	// HasPending reports whether a listed document is still being processed.
	HasPending() bool
}

// EmailService reads the connected mailbox.
type EmailService interface {
	Status(ctx context.Context) (models.EmailStatus, error)

	// Recent returns up to top messages; top <= 0 selects the default.
	Recent(ctx context.Context, top int) (models.EmailList, error)

	// Search looks messages up by keyword; top 0 selects the default and a
	// negative top is rejected.
	Search(ctx context.Context, keyword string, top int) (models.EmailList, error)
}

// SystemService serves backend status reads. Results are cached for a
// short time so switching pages does not refetch them.
type SystemService interface {
	Health(ctx context.Context) (models.Health, error)
	Info(ctx context.Context) (models.ServiceInfo, error)
	Stats(ctx context.Context) (models.KnowledgeStats, error)

	// Invalidate drops every cached value.
	Invalidate()
}

// DocumentPollJob refetches the document list while uploads are still
// being processed by the backend.
type DocumentPollJob interface {
	// Start launches the background poller. Any running poller is stopped
	// first. A non-positive interval selects the default.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the poller to exit and waits for it.
	Stop()
}
