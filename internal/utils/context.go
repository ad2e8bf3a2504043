// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys, the HTTP client
// wrapper, JWT inspection and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RetriedCtxKey marks a request that is already the single retry issued
// after a credential refresh.
var RetriedCtxKey = contextKey("retried")

// WithRetried returns a copy of ctx marked as a retry.
func WithRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, RetriedCtxKey, true)
}

// IsRetried reports whether ctx was marked by [WithRetried].
func IsRetried(ctx context.Context) bool {
	retried, _ := ctx.Value(RetriedCtxKey).(bool)
	return retried
}
