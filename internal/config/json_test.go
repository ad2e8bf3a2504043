package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {"state_namespace": "ns", "storage_secret": "pw", "dev_login": true},
		"adapter": {"http_address": "localhost:5000", "request_timeout": "30s"},
		"storage": {"db": {"dsn": "file:state.json"}},
		"callback": {"address": "127.0.0.1:9000", "path": "/cb"},
		"workers": {"document_poll_interval": "12s"},
		"log": {"file": "client.log", "level": "error", "max_size_mb": 1, "max_backups": 4, "max_age_days": 9},
		"cache": {"ttl": "45s"}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "ns", cfg.App.StateNamespace)
	assert.Equal(t, "pw", cfg.App.StorageSecret)
	assert.True(t, cfg.App.DevLogin)
	assert.Equal(t, "localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:state.json", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Callback.Address)
	assert.Equal(t, "/cb", cfg.Callback.Path)
	assert.Equal(t, 12*time.Second, cfg.Workers.DocumentPollInterval)
	assert.Equal(t, "client.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Log.MaxSizeMB)
	assert.Equal(t, 4, cfg.Log.MaxBackups)
	assert.Equal(t, 9, cfg.Log.MaxAgeDays)
	assert.Equal(t, 45*time.Second, cfg.Cache.TTL)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": `), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", in: `1000000000`, want: time.Second},
		{name: "garbage", in: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return newClientConfig(defaultConfig()) }

	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "defaults", mutate: func(c *ClientConfig) {}, want: nil},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = " " }, want: ErrInvalidStorageConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, want: ErrInvalidAdapterConfigs},
		{name: "bad callback path", mutate: func(c *ClientConfig) { c.Callback.Path = "cb" }, want: ErrInvalidCallbackConfigs},
		{name: "no poll interval", mutate: func(c *ClientConfig) { c.Workers.DocumentPollInterval = 0 }, want: ErrInvalidWorkerConfigs},
		{name: "no namespace", mutate: func(c *ClientConfig) { c.App.StateNamespace = "" }, want: ErrInvalidAppConfigs},
		{name: "bad level", mutate: func(c *ClientConfig) { c.Log.Level = "loud" }, want: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
