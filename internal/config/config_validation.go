// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]. Only values that are set are checked; missing values
// are caught by [ClientConfig.validate] after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Workers.DocumentPollInterval < 0 || cfg.Cache.TTL < 0 {
		return ErrNegativeDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Callback.Address == "" || !strings.HasPrefix(cfg.Callback.Path, "/") {
		return ErrInvalidCallbackConfigs
	}

	if cfg.Workers.DocumentPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.StateNamespace == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	return nil
}
