package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-wide settings derived from the structured config.
type ClientApp struct {
	// StateNamespace is the key of the persisted client state blob.
	StateNamespace string
	// StorageSecret seals local storage values when non-empty.
	StorageSecret string
	// DevLogin shows the developer login entry.
	DevLogin bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base address.
	HTTPAddress string
	// RequestTimeout is the upper bound of every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path, "file:<path>.json" or ":memory:".
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientCallback holds the OAuth loopback listener settings.
type ClientCallback struct {
	Address string
	Path    string
}

// RedirectURL returns the URL the identity provider sends the browser back to.
func (c ClientCallback) RedirectURL() string {
	return "http://" + c.Address + c.Path
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// DocumentPollInterval defines how often unfinished documents are refetched.
	DocumentPollInterval time.Duration
}

// ClientLog contains log file settings.
type ClientLog struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ClientCache contains read cache settings.
type ClientCache struct {
	TTL time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Storage  ClientStorage
	Callback ClientCallback
	Workers  ClientWorkers
	Log      ClientLog
	Cache    ClientCache
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields into
// the client runtime view, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			StateNamespace: cfg.App.StateNamespace,
			StorageSecret:  cfg.App.StorageSecret,
			DevLogin:       cfg.App.DevLogin,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Callback: ClientCallback{
			Address: cfg.Callback.Address,
			Path:    cfg.Callback.Path,
		},
		Workers: ClientWorkers{DocumentPollInterval: cfg.Workers.DocumentPollInterval},
		Log: ClientLog{
			File:       cfg.Log.File,
			Level:      cfg.Log.Level,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		},
		Cache: ClientCache{TTL: cfg.Cache.TTL},
	}
}
