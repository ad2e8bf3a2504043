package adapter

import (
	"errors"
	"fmt"
)

// Kind classifies an [APIError].
type Kind string

const (
	// KindNetwork means no response was received.
	KindNetwork Kind = "NetworkError"
	// KindTimeout means the request exceeded its deadline.
	KindTimeout Kind = "Timeout"
	// KindAuth is an HTTP 401.
	KindAuth Kind = "AuthError"
	// KindHTTP is any other non-2xx status.
	KindHTTP Kind = "HttpError"
	// KindApplication is a response envelope with a non-zero code.
	KindApplication Kind = "ApplicationError"
)

// Sentinels matched by [APIError.Is].
var (
	ErrNetwork      = errors.New("network error")
	ErrTimeout      = errors.New("request timed out")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrHTTP         = errors.New("http error")
	ErrApplication  = errors.New("application error")
)

var (
	// ErrNoRefreshToken is returned by Refresh when no refresh token is stored.
	ErrNoRefreshToken = errors.New("no refresh token stored")
	// ErrInvalidAddress is returned for an unusable backend address.
	ErrInvalidAddress = errors.New("invalid backend address")
	// ErrDecodingResponse is returned when a payload does not match its type.
	ErrDecodingResponse = errors.New("error decoding response")
)

// UnknownCode is the Code of errors that carry neither an envelope code nor
// an HTTP status.
const UnknownCode = -1

// APIError is the normalized failure of a backend call.
type APIError struct {
	Kind Kind
	// Code is the envelope code, else the HTTP status, else UnknownCode.
	Code int
	// Message is the envelope message, else the body, else the status text.
	Message string
	// Status is the HTTP status, 0 when no response was received.
	Status int
	// Body is the raw response body of HTTP errors.
	Body string

	err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code %d): %s", e.Kind, e.Code, e.Message)
}

// Unwrap returns the underlying transport or decoding error, if any.
func (e *APIError) Unwrap() error {
	return e.err
}

// Is matches the package sentinels by kind.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrUnauthorized:
		return e.Kind == KindAuth
	case ErrHTTP:
		return e.Kind == KindHTTP
	case ErrApplication:
		return e.Kind == KindApplication
	}
	return false
}

// Normalize turns any error into the {code, message} shape callers present.
// Errors that are not [*APIError] become a network-kind error with
// [UnknownCode]. Normalize returns nil for a nil error.
func Normalize(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Kind: KindNetwork, Code: UnknownCode, Message: err.Error(), err: err}
}
