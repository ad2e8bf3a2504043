package server

import "context"

// CallbackResult is one delivery of the OAuth callback. Exactly one of Code
// and Err is set.
type CallbackResult struct {
	Code string
	Err  error
}

// CallbackServer defines the lifecycle of the OAuth callback listener.
//
// Start binds the listener and serves in the background. Results delivers
// the outcome of every callback request; Shutdown stops the listener
// gracefully.
type CallbackServer interface {
	// Start binds the configured address and starts serving.
	Start() error

	// Results delivers callback outcomes. The channel is never closed.
	Results() <-chan CallbackResult

	// Addr returns the bound address, or the configured one before Start.
	Addr() string

	// Shutdown gracefully stops the listener.
	Shutdown(ctx context.Context) error
}
