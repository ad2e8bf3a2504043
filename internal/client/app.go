package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/config"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/server"
	"github.com/MKhiriev/go-campus-assistant/internal/service"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/internal/store"
	"github.com/MKhiriev/go-campus-assistant/internal/tui"
	"github.com/MKhiriev/go-campus-assistant/internal/workers"
	"github.com/MKhiriev/go-campus-assistant/models"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	callback server.CallbackServer
	ui       *tui.TUI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.App.StorageSecret, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	appState := state.New(ctx, storages.LocalStorage, cfg.App.StateNamespace, log)

	// The UI needs the services, the adapter needs the UI as its navigator.
	var ui *tui.TUI
	navigator := adapter.NavigatorFunc(func() {
		if ui != nil {
			ui.RedirectToLogin()
		}
	})

	serverAdapter, err := adapter.NewHTTPServerAdapter(ctx, cfg.Adapter, storages.Credentials, navigator, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(cfg, serverAdapter, appState, log)
	callback := server.NewCallbackServer(cfg.Callback, log)
	ui = tui.New(services, appState, callback, buildInfo, cfg.App.DevLogin, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		callback: callback,
		ui:       ui,
		logger:   log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	background := workers.NewWorkers(
		workers.NewDocumentPoller(ctx, a.services.DocumentPollJob, a.cfg.Workers.DocumentPollInterval),
	)
	background.Run()
	defer a.shutdown()
	defer background.Stop()

	a.logger.Info().Str("backend", a.cfg.Adapter.HTTPAddress).Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.callback.Shutdown(ctx); err != nil {
		a.logger.Err(err).Msg("callback listener shutdown failed")
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("closing local storage failed")
	}
	a.logger.Info().Msg("client stopped")
}
