package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-campus-assistant/internal/mock"
	"github.com/MKhiriev/go-campus-assistant/internal/server"
	"github.com/MKhiriev/go-campus-assistant/models"
)

type fakeCallback struct {
	starts   int
	startErr error
	results  chan server.CallbackResult
}

func newFakeCallback() *fakeCallback {
	return &fakeCallback{results: make(chan server.CallbackResult, 1)}
}

func (f *fakeCallback) Start() error {
	f.starts++
	return f.startErr
}

func (f *fakeCallback) Results() <-chan server.CallbackResult { return f.results }
func (f *fakeCallback) Addr() string                          { return "127.0.0.1:8765" }
func (f *fakeCallback) Shutdown(context.Context) error        { return nil }

func TestOAuthFlow_BeginStartsListenerOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	cb := newFakeCallback()

	var opened []string
	flow := newOAuthFlow(auth, cb)
	flow.openURL = func(u string) error {
		opened = append(opened, u)
		return errors.New("no display")
	}

	auth.EXPECT().LoginURL(gomock.Any()).Return("https://login.example.edu/authorize", nil).Times(2)

	for range 2 {
		url, err := flow.begin(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://login.example.edu/authorize", url)
	}
	assert.Equal(t, 1, cb.starts)
	assert.Len(t, opened, 2)
}

func TestOAuthFlow_BeginListenerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	cb := newFakeCallback()
	cb.startErr = errors.New("address in use")

	flow := newOAuthFlow(auth, cb)
	flow.openURL = nil

	_, err := flow.begin(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cb.startErr)
}

func TestOAuthFlow_AwaitCompletesLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	cb := newFakeCallback()
	flow := newOAuthFlow(auth, cb)

	user := models.User{ID: "7", Name: "Ada"}
	auth.EXPECT().CompleteOAuth(gomock.Any(), "abc").Return(user, nil)

	cb.results <- server.CallbackResult{Code: "abc"}
	got, err := flow.await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestOAuthFlow_AwaitDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	cb := newFakeCallback()
	flow := newOAuthFlow(auth, cb)

	cb.results <- server.CallbackResult{Err: server.ErrCallbackDenied}
	_, err := flow.await(context.Background())
	assert.ErrorIs(t, err, server.ErrCallbackDenied)
}

func TestOAuthFlow_AwaitCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow := newOAuthFlow(mock.NewMockAuthService(ctrl), newFakeCallback())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := flow.await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
