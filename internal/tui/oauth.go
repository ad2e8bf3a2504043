package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-campus-assistant/internal/server"
	"github.com/MKhiriev/go-campus-assistant/internal/service"
	"github.com/MKhiriev/go-campus-assistant/models"
)

// oauthFlow drives the browser sign-in: it starts the local callback
// listener once, opens the identity provider and waits for the code.
type oauthFlow struct {
	auth     service.AuthService
	callback server.CallbackServer
	openURL  func(string) error

	once     sync.Once
	startErr error
}

func newOAuthFlow(auth service.AuthService, callback server.CallbackServer) *oauthFlow {
	return &oauthFlow{auth: auth, callback: callback, openURL: openBrowser}
}

// begin returns the authorization URL. A browser that fails to open is not
// an error; the URL is shown on screen.
func (f *oauthFlow) begin(ctx context.Context) (string, error) {
	if f.callback != nil {
		f.once.Do(func() { f.startErr = f.callback.Start() })
		if f.startErr != nil {
			return "", fmt.Errorf("start callback listener: %w", f.startErr)
		}
	}

	url, err := f.auth.LoginURL(ctx)
	if err != nil {
		return "", err
	}

	if f.openURL != nil {
		_ = f.openURL(url)
	}
	return url, nil
}

// await blocks until the provider redirects back, then completes the login.
func (f *oauthFlow) await(ctx context.Context) (models.User, error) {
	if f.callback == nil {
		return models.User{}, fmt.Errorf("callback listener is disabled")
	}

	select {
	case <-ctx.Done():
		return models.User{}, ctx.Err()
	case res := <-f.callback.Results():
		if res.Err != nil {
			return models.User{}, res.Err
		}
		return f.auth.CompleteOAuth(ctx, res.Code)
	}
}
