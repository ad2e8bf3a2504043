package config

import "time"

// Defaults applied when no source sets a value.
const (
	DefaultAdapterAddress       = "http://localhost:5000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultDSN                  = "campus-assistant.db"
	DefaultStateNamespace       = "campus-assistant-storage"
	DefaultCallbackAddress      = "127.0.0.1:8765"
	DefaultCallbackPath         = "/auth/callback"
	DefaultDocumentPollInterval = 10 * time.Second
	DefaultCacheTTL             = 30 * time.Second
	DefaultLogLevel             = "info"
	DefaultLogMaxSizeMB         = 10
	DefaultLogMaxBackups        = 3
	DefaultLogMaxAgeDays        = 28
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			StateNamespace: DefaultStateNamespace,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Callback: Callback{
			Address: DefaultCallbackAddress,
			Path:    DefaultCallbackPath,
		},
		Workers: Workers{
			DocumentPollInterval: DefaultDocumentPollInterval,
		},
		Log: Log{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
		Cache: Cache{
			TTL: DefaultCacheTTL,
		},
	}
}
