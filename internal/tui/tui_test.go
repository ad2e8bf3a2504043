package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/mock"
	"github.com/MKhiriev/go-campus-assistant/internal/service"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/internal/store"
	"github.com/MKhiriev/go-campus-assistant/models"
)

func TestTUI_RedirectToLoginSignsOut(t *testing.T) {
	ctx := context.Background()
	local, err := store.NewFileLocalStorage(store.MemoryDSN)
	require.NoError(t, err)

	appState := state.New(ctx, local, state.DefaultNamespace, logger.Nop())
	appState.SetUser(&models.User{ID: "7", Name: "Ada"})

	ctrl := gomock.NewController(t)
	services := &service.ClientServices{AuthService: mock.NewMockAuthService(ctrl)}
	ui := New(services, appState, nil, models.NewAppBuildInfo("", "", ""), false, logger.Nop())

	ui.RedirectToLogin()

	snap := appState.Snapshot()
	assert.Nil(t, snap.User)
	assert.False(t, snap.IsAuthenticated)

	// the persisted subset no longer carries the user either
	restored := state.New(ctx, local, state.DefaultNamespace, logger.Nop())
	assert.Nil(t, restored.Snapshot().User)
	assert.False(t, restored.Snapshot().IsAuthenticated)
}

func TestTUI_ApplyThemeSwapsPalette(t *testing.T) {
	appState := state.New(context.Background(), nil, state.DefaultNamespace, nil)
	ctrl := gomock.NewController(t)
	services := &service.ClientServices{AuthService: mock.NewMockAuthService(ctrl)}
	ui := New(services, appState, nil, models.NewAppBuildInfo("", "", ""), false, logger.Nop())

	appState.ToggleTheme()
	assert.Equal(t, models.ThemeDark, ui.theme.get().theme)
}
