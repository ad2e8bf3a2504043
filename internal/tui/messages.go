package tui

import "github.com/MKhiriev/go-campus-assistant/models"

// stateChangedMsg is sent after every store mutation. The model reads the
// store snapshot itself.
type stateChangedMsg struct{}

// sessionExpiredMsg is sent when the adapter gives up on the session.
type sessionExpiredMsg struct{}

type sessionRestoredMsg struct{ err error }

type loginURLMsg struct {
	url string
	err error
}

type loginDoneMsg struct {
	user models.User
	err  error
}

type answerMsg struct{ err error }

type historyLoadedMsg struct{ err error }

type documentsLoadedMsg struct{ err error }

type uploadDoneMsg struct {
	doc models.Document
	err error
}

type searchDoneMsg struct {
	results models.SearchResults
	err     error
}

type statsMsg struct {
	stats models.KnowledgeStats
	err   error
}

type emailStatusMsg struct {
	status models.EmailStatus
	err    error
}

type emailListMsg struct {
	list models.EmailList
	err  error
}

type connectURLMsg struct {
	url string
	err error
}

type systemInfoMsg struct {
	health models.Health
	info   models.ServiceInfo
	err    error
}

type logoutDoneMsg struct{ err error }

// opDoneMsg reports a finished command that has no payload of its own.
type opDoneMsg struct {
	status string
	err    error
}

type clearStatusMsg struct{}
