package service

import "errors"

var (
	ErrEmptyAuthCode        = errors.New("authorization code is empty")
	ErrNoLoginURL           = errors.New("backend returned no login url")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrOpenDocument         = errors.New("cannot open document")
)
