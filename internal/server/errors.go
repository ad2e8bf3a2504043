// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrCallbackDenied is delivered when the provider redirects back with
	// an error instead of a code.
	ErrCallbackDenied = errors.New("sign-in was not completed")
	// ErrMissingCode is delivered when the callback carries neither a code
	// nor an error.
	ErrMissingCode = errors.New("callback carries no authorization code")

	errAlreadyStarted = errors.New("callback server already started")
)
