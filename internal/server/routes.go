package server

import (
	"fmt"
	"html"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *callbackServer) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID)
	router.Use(s.withLogging)

	router.Get(s.cfg.Path, s.callback)

	return router
}

const pageTemplate = `<!doctype html>
<html><head><meta charset="utf-8"><title>Campus Assistant</title></head>
<body style="font-family:sans-serif;text-align:center;margin-top:4em">
<h2>%s</h2><p>%s</p>
</body></html>`

func (s *callbackServer) callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if reason := q.Get("error"); reason != "" {
		if desc := q.Get("error_description"); desc != "" {
			reason += ": " + desc
		}
		s.deliver(CallbackResult{Err: fmt.Errorf("%w: %s", ErrCallbackDenied, reason)})
		writePage(w, http.StatusOK, "Sign-in failed", reason+". Return to the terminal and try again.")
		return
	}

	code := q.Get("code")
	if code == "" {
		s.deliver(CallbackResult{Err: ErrMissingCode})
		writePage(w, http.StatusBadRequest, "Sign-in failed", "The callback carried no authorization code.")
		return
	}

	s.deliver(CallbackResult{Code: code})
	writePage(w, http.StatusOK, "Signed in", "You can close this window and return to the terminal.")
}

func writePage(w http.ResponseWriter, status int, title, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, pageTemplate, html.EscapeString(title), html.EscapeString(body))
}
