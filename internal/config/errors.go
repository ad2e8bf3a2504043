package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing backend address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty state namespace).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidCallbackConfigs indicates an unusable OAuth callback listener
	// address or path.
	ErrInvalidCallbackConfigs = errors.New("invalid callback configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrNegativeDuration indicates a duration setting below zero.
	ErrNegativeDuration = errors.New("durations must not be negative")
)
