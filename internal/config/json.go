package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the
// optional JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		StateNamespace string `json:"state_namespace"`
		StorageSecret  string `json:"storage_secret"`
		DevLogin       bool   `json:"dev_login"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Callback struct {
		Address string `json:"address"`
		Path    string `json:"path"`
	} `json:"callback,omitempty"`

	Workers struct {
		DocumentPollInterval Duration `json:"document_poll_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File       string `json:"file"`
		Level      string `json:"level"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		MaxAgeDays int    `json:"max_age_days"`
	} `json:"log,omitempty"`

	Cache struct {
		TTL Duration `json:"ttl"`
	} `json:"cache,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			StateNamespace: jsonCfg.App.StateNamespace,
			StorageSecret:  jsonCfg.App.StorageSecret,
			DevLogin:       jsonCfg.App.DevLogin,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Callback: Callback{
			Address: jsonCfg.Callback.Address,
			Path:    jsonCfg.Callback.Path,
		},
		Workers: Workers{
			DocumentPollInterval: time.Duration(jsonCfg.Workers.DocumentPollInterval),
		},
		Log: Log{
			File:       jsonCfg.Log.File,
			Level:      jsonCfg.Log.Level,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
			MaxAgeDays: jsonCfg.Log.MaxAgeDays,
		},
		Cache: Cache{
			TTL: time.Duration(jsonCfg.Cache.TTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
