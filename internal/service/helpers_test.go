package service

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
)

var (
	authError    = &adapter.APIError{Kind: adapter.KindAuth, Code: 401, Status: 401, Message: "unauthorized"}
	networkError = &adapter.APIError{Kind: adapter.KindNetwork, Code: adapter.UnknownCode, Message: "connection refused"}
	serverError  = &adapter.APIError{Kind: adapter.KindHTTP, Code: 500, Status: 500, Message: "internal error"}
)

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	return state.New(context.Background(), nil, state.DefaultNamespace, nil)
}

// seqIDs hands out "id-1", "id-2", ...
type seqIDs struct {
	n atomic.Int64
}

func (s *seqIDs) Generate() string {
	return "id-" + strconv.FormatInt(s.n.Add(1), 10)
}

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
