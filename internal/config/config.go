// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// campus assistant client. It aggregates all sub-configurations and is
// populated by merging values from environment variables (including a
// local .env file), command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client-wide settings such as the persisted state namespace
	// and the optional storage secret.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the durable local storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Callback holds the loopback listener used to finish the OAuth flow.
	Callback Callback `envPrefix:"CALLBACK_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the client log file settings.
	Log Log `envPrefix:"LOG_"`

	// Cache holds the read cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-wide settings.
type App struct {
	// StateNamespace is the storage key the persisted part of the client
	// state is written under.
	// Env: APP_STATE_NAMESPACE
	StateNamespace string `env:"STATE_NAMESPACE"`

	// StorageSecret, when set, seals every value written to local storage.
	// Env: APP_STORAGE_SECRET
	StorageSecret string `env:"STORAGE_SECRET"`

	// DevLogin enables the developer login entry on the login page.
	// Env: APP_DEV_LOGIN
	DevLogin bool `env:"DEV_LOGIN"`
}

// Adapter holds settings of the backend HTTP client.
type Adapter struct {
	// HTTPAddress is the backend base address, with or without scheme
	// (e.g. "localhost:5000" or "https://assistant.example.edu").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local storage backends.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN selects the backend: a SQLite file path (default), "file:<path>.json"
	// for the JSON file backend or ":memory:" for a process-local store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Callback configures the OAuth loopback listener.
type Callback struct {
	// Address is the host:port the listener binds to.
	// Env: CALLBACK_ADDRESS
	Address string `env:"ADDRESS"`

	// Path is the route that receives the authorization code.
	// Env: CALLBACK_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// DocumentPollInterval is how often unfinished documents are refetched.
	// Env: WORKERS_DOCUMENT_POLL_INTERVAL
	DocumentPollInterval time.Duration `env:"DOCUMENT_POLL_INTERVAL"`
}

// Log holds the client log file settings.
type Log struct {
	// File is the log file path. Empty means "logs" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files to keep.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`

	// MaxAgeDays is how long rotated files are kept.
	// Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// Cache holds the read cache settings.
type Cache struct {
	// TTL is how long health, stats and email status answers are reused.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables (a .env file in the working directory is
//     loaded first and never overrides variables already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
