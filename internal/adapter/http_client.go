package adapter

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
)

const maxRedirects = 10

// RequestOption customises a single [ServerAdapter.Do] call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	query        url.Values
	file         *fileUpload
	skipRecovery bool
}

type fileUpload struct {
	field    string
	filename string
	data     []byte
}

func newRequestOptions(opts []RequestOption) *requestOptions {
	o := &requestOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithQuery adds a query parameter.
func WithQuery(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}
		o.query.Add(key, value)
	}
}

// WithFile sends a multipart form with one file part instead of a JSON body.
// The content is kept in memory so the request can be re-issued.
func WithFile(field, filename string, data []byte) RequestOption {
	return func(o *requestOptions) {
		o.file = &fileUpload{field: field, filename: filename, data: data}
	}
}

// WithoutRecovery returns a 401 to the caller without refresh or redirect.
func WithoutRecovery() RequestOption {
	return func(o *requestOptions) {
		o.skipRecovery = true
	}
}

// send executes one HTTP exchange with the stored credentials attached.
// Transport failures are returned as [*APIError]; any received response,
// whatever its status, is returned as is.
func (h *httpServerAdapter) send(ctx context.Context, method, path string, body any, o *requestOptions) (*resty.Response, error) {
	log := logger.FromContext(ctx)

	req := h.client.R().SetContext(ctx)

	tok, err := h.credentials.Token(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "httpServerAdapter.send").Msg("failed to read stored token")
	}
	if tok != nil && tok.AccessToken != "" {
		req.SetAuthToken(tok.AccessToken)
	}

	if len(o.query) > 0 {
		req.SetQueryParamsFromValues(o.query)
	}
	switch {
	case o.file != nil:
		req.SetFileReader(o.file.field, o.file.filename, bytes.NewReader(o.file.data))
	case body != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return nil, mapTransportError(err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("request done")

	h.persistCookies(ctx)
	return resp, nil
}

// callbackRedirectPolicy follows redirects as usual except for the OAuth
// callback: its redirect points at a browser page, and the session cookie
// set on the redirect response is all the client needs.
func callbackRedirectPolicy() resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		if len(via) > 0 && strings.HasSuffix(via[0].URL.Path, callbackPath) {
			return http.ErrUseLastResponse
		}
		if len(via) >= maxRedirects {
			return errors.New("stopped after 10 redirects")
		}
		return nil
	})
}

func (h *httpServerAdapter) restoreCookies(ctx context.Context) error {
	cookies, err := h.credentials.Cookies(ctx)
	if err != nil {
		return err
	}
	if len(cookies) == 0 {
		return nil
	}

	h.cookieMu.Lock()
	defer h.cookieMu.Unlock()

	h.client.Jar.SetCookies(h.baseURL, cookies)
	h.cookieDigest = cookieDigest(h.client.Jar.Cookies(h.baseURL))
	return nil
}

// persistCookies stores the jar's cookies for the backend when they changed.
func (h *httpServerAdapter) persistCookies(ctx context.Context) {
	h.cookieMu.Lock()
	defer h.cookieMu.Unlock()

	cookies := h.client.Jar.Cookies(h.baseURL)
	digest := cookieDigest(cookies)
	if digest == h.cookieDigest {
		return
	}

	for _, c := range cookies {
		c.Path = "/"
	}
	if err := h.credentials.SaveCookies(ctx, cookies); err != nil {
		h.logger.Warn().Err(err).Str("func", "httpServerAdapter.persistCookies").Msg("failed to persist session cookies")
		return
	}
	h.cookieDigest = digest
}

func (h *httpServerAdapter) resetCookies() {
	h.cookieMu.Lock()
	defer h.cookieMu.Unlock()

	h.client.Jar.Reset()
	h.cookieDigest = ""
}

func cookieDigest(cookies []*http.Cookie) string {
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	slices.Sort(pairs)
	return strings.Join(pairs, ";")
}
