package state

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/store"
	"github.com/MKhiriev/go-campus-assistant/models"
)

// Observer is notified after every mutation. prev and next are shared
// snapshots and must be treated as read-only.
type Observer interface {
	OnStateChange(prev, next State)
}

// ObserverFunc adapts a plain function to [Observer].
type ObserverFunc func(prev, next State)

// OnStateChange calls f.
func (f ObserverFunc) OnStateChange(prev, next State) { f(prev, next) }

// ThemeApplier applies a theme to the presentation layer.
type ThemeApplier interface {
	ApplyTheme(theme models.Theme)
}

// ThemeApplierFunc adapts a plain function to [ThemeApplier].
type ThemeApplierFunc func(theme models.Theme)

// ApplyTheme calls f.
func (f ThemeApplierFunc) ApplyTheme(theme models.Theme) { f(theme) }

type subscription struct {
	id       uint64
	observer Observer
}

// Store is the client state container. Create independent instances with
// [New]; the zero value is not usable.
type Store struct {
	mu        sync.Mutex
	state     State
	observers []subscription
	nextID    uint64

	themeMu sync.Mutex
	theme   ThemeApplier

	persister *persister
	logger    *logger.Logger
}

// New creates a store hydrated from storage. storage may be nil, which
// disables persistence. namespace is the key of the persisted blob.
func New(ctx context.Context, storage store.LocalStorage, namespace string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("state")

	s := &Store{
		state:  Defaults(),
		logger: log,
	}
	if storage != nil {
		s.persister = newPersister(storage, namespace, log)
		s.state = s.persister.hydrate(ctx, s.state)
	}

	return s
}

// SetThemeApplier installs the presentation callback and applies the current
// theme to it right away.
func (s *Store) SetThemeApplier(applier ThemeApplier) {
	s.themeMu.Lock()
	s.theme = applier
	s.themeMu.Unlock()

	if applier != nil {
		applier.ApplyTheme(s.Snapshot().Theme)
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers o and returns a function that removes it. Observers
// run in subscription order on the goroutine that made the mutation.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, observer: o})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// SetUser sets the signed-in user; nil signs out. IsAuthenticated follows.
func (s *Store) SetUser(user *models.User) {
	s.dispatch(func(st State) State { return setUser(st, user) })
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme() {
	s.dispatch(toggleTheme)
}

// SetTheme sets theme. Unknown themes are ignored.
func (s *Store) SetTheme(theme models.Theme) {
	s.dispatch(func(st State) State { return setTheme(st, theme) })
}

// SetCurrentConversation makes conversation active and replaces the
// message buffer with its messages.
func (s *Store) SetCurrentConversation(conversation *models.Conversation) {
	s.dispatch(func(st State) State { return setCurrentConversation(st, conversation) })
}

// AddMessage appends message to the buffer.
func (s *Store) AddMessage(message models.Message) {
	s.dispatch(func(st State) State { return addMessage(st, message) })
}

// UpdateMessage replaces the content of the message with id and clears its
// streaming flag. Unknown ids are ignored.
func (s *Store) UpdateMessage(id models.ID, content string) {
	s.dispatch(func(st State) State { return updateMessage(st, id, content) })
}

// ClearMessages empties the buffer and drops the active conversation.
func (s *Store) ClearMessages() {
	s.dispatch(clearMessages)
}

// SetConversations replaces the conversation list.
func (s *Store) SetConversations(list []models.Conversation) {
	s.dispatch(func(st State) State { return setConversations(st, list) })
}

// SetDocuments replaces the document list.
func (s *Store) SetDocuments(list []models.Document) {
	s.dispatch(func(st State) State { return setDocuments(st, list) })
}

// ToggleSidebar flips the sidebar flag.
func (s *Store) ToggleSidebar() {
	s.dispatch(toggleSidebar)
}

// SetLoading sets the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.dispatch(func(st State) State { return setLoading(st, loading) })
}

// dispatch applies reducer atomically, then runs the side effects outside
// the state lock: theme application, persistence and observers.
func (s *Store) dispatch(reducer func(State) State) {
	s.mu.Lock()
	prev := s.state
	next := reducer(prev)
	s.state = next
	observers := make([]Observer, len(s.observers))
	for i, sub := range s.observers {
		observers[i] = sub.observer
	}
	s.mu.Unlock()

	if prev.Theme != next.Theme {
		s.applyTheme(next.Theme)
	}

	if s.persister != nil {
		s.persister.save(context.Background(), s.currentPersisted)
	}

	for _, o := range observers {
		o.OnStateChange(prev, next)
	}
}

func (s *Store) applyTheme(theme models.Theme) {
	s.themeMu.Lock()
	applier := s.theme
	s.themeMu.Unlock()

	if applier != nil {
		applier.ApplyTheme(theme)
	}
}

func (s *Store) currentPersisted() persistedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return persistedFrom(s.state)
}
