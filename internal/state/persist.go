package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/store"
	"github.com/MKhiriev/go-campus-assistant/models"
)

// DefaultNamespace is the storage key of the persisted state blob.
const DefaultNamespace = "campus-assistant-storage"

// persistVersion is the version of the persisted blob layout.
const persistVersion = 0

// persistedState is the subset of [State] that survives restarts.
type persistedState struct {
	User            *models.User `json:"user"`
	Theme           models.Theme `json:"theme"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

type persistedBlob struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

func persistedFrom(s State) persistedState {
	return persistedState{
		User:            s.User.Clone(),
		Theme:           s.Theme,
		IsAuthenticated: s.IsAuthenticated,
	}
}

type persister struct {
	storage   store.LocalStorage
	namespace string
	logger    *logger.Logger

	mu   sync.Mutex
	last string
}

func newPersister(storage store.LocalStorage, namespace string, log *logger.Logger) *persister {
	return &persister{storage: storage, namespace: namespace, logger: log}
}

// hydrate overlays the persisted subset on base. A missing, unreadable or
// corrupt blob leaves base untouched.
func (p *persister) hydrate(ctx context.Context, base State) State {
	raw, ok, err := p.storage.GetItem(ctx, p.namespace)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "persister.hydrate").Msg("failed to read persisted state, using defaults")
		return base
	}
	if !ok {
		return base
	}

	var blob persistedBlob
	if err = json.Unmarshal([]byte(raw), &blob); err != nil {
		p.logger.Warn().Err(err).Str("func", "persister.hydrate").Msg("persisted state is corrupt, discarding")
		return base
	}

	base.User = blob.State.User
	base.IsAuthenticated = base.User != nil
	if blob.State.Theme.Valid() {
		base.Theme = blob.State.Theme
	}

	p.mu.Lock()
	p.last = raw
	p.mu.Unlock()

	return base
}

// save writes the subset returned by current when it differs from the last
// written blob. current is read under the persister lock so the last write
// always reflects the latest state.
func (p *persister) save(ctx context.Context, current func() persistedState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	payload, err := json.Marshal(persistedBlob{State: current(), Version: persistVersion})
	if err != nil {
		p.logger.Err(err).Str("func", "persister.save").Msg("failed to encode state")
		return
	}

	blob := string(payload)
	if blob == p.last {
		return
	}

	if err = p.storage.SetItem(ctx, p.namespace, blob); err != nil {
		p.logger.Err(err).Str("func", "persister.save").Msg("failed to persist state")
		return
	}
	p.last = blob
}
