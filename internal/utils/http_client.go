package utils

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client together with the cookie jar it sends.
// The jar is exposed so session cookies can be persisted between runs.
type HTTPClient struct {
	*resty.Client
	Jar *CookieJar
}

// NewHTTPClient creates a resty client pointed at baseURL with the given
// per-request timeout and a fresh in-memory cookie jar.
//
// Each call returns an independent client with its own connection pool
// and cookies.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	jar := NewCookieJar()

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client, Jar: jar}
}

// CookieJar is an [http.CookieJar] that can be emptied while requests are in
// flight.
type CookieJar struct {
	mu  sync.RWMutex
	jar *cookiejar.Jar
}

// NewCookieJar returns an empty jar.
func NewCookieJar() *CookieJar {
	return &CookieJar{jar: newJar()}
}

func newJar() *cookiejar.Jar {
	// cookiejar.New only fails for a broken PublicSuffixList
	jar, _ := cookiejar.New(nil)
	return jar
}

func (j *CookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.jar.SetCookies(u, cookies)
}

func (j *CookieJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jar.Cookies(u)
}

// Reset drops every cookie.
func (j *CookieJar) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jar = newJar()
}
