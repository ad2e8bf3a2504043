// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the campus assistant. A single
// Bubble Tea model renders the state store and turns key presses into
// service calls.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/server"
	"github.com/MKhiriev/go-campus-assistant/internal/service"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/models"
)

// TUI owns the Bubble Tea program. It is also the navigator the adapter
// calls when the session is lost and the theme applier of the store.
type TUI struct {
	services  *service.ClientServices
	store     *state.Store
	oauth     *oauthFlow
	theme     *themeHolder
	buildInfo models.AppBuildInfo
	devLogin  bool
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, store *state.Store, callback server.CallbackServer,
	buildInfo models.AppBuildInfo, devLogin bool, log *logger.Logger) *TUI {
	t := &TUI{
		services:  services,
		store:     store,
		oauth:     newOAuthFlow(services.AuthService, callback),
		theme:     newThemeHolder(store.Snapshot().Theme),
		buildInfo: buildInfo,
		devLogin:  devLogin,
		logger:    log.WithComponent("tui"),
	}
	store.SetThemeApplier(t)
	return t
}

// RedirectToLogin signs the user out of the state store, which also drops
// the persisted user, and switches the UI to the sign-in page.
func (t *TUI) RedirectToLogin() {
	t.logger.Info().Msg("session expired, returning to sign-in")
	t.store.SetUser(nil)
	t.send(sessionExpiredMsg{})
}

// ApplyTheme swaps the active palette. The next frame uses it.
func (t *TUI) ApplyTheme(theme models.Theme) {
	t.theme.set(theme)
	t.send(stateChangedMsg{})
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(deps{
		ctx:       ctx,
		services:  t.services,
		store:     t.store,
		oauth:     t.oauth,
		theme:     t.theme,
		openURL:   openBrowser,
		buildInfo: t.buildInfo,
		devLogin:  t.devLogin,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	unsubscribe := t.store.Subscribe(state.ObserverFunc(func(_, _ state.State) {
		t.send(stateChangedMsg{})
	}))
	defer unsubscribe()

	_, err := p.Run()
	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// send never blocks the caller: store observers run on the goroutine that
// mutated the store, which may be the program's own update loop.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		go p.Send(msg)
	}
}
