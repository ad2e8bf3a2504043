package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MemoryDSN selects the process-local backend.
const MemoryDSN = ":memory:"

type fileLocalStorage struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	items map[string]string
}

type filePersistedState struct {
	Items map[string]string `json:"items"`
}

// NewFileLocalStorage returns a [LocalStorage] kept in memory and mirrored to
// a JSON file at path after every write. An empty path or [MemoryDSN] keeps
// the data in memory only.
func NewFileLocalStorage(path string) (LocalStorage, error) {
	path = strings.TrimPrefix(path, "file:")
	if path == "" {
		path = MemoryDSN
	}

	s := &fileLocalStorage{
		path:     path,
		inMemory: path == MemoryDSN || path == "memory",
		items:    make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileLocalStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok, nil
}

func (s *fileLocalStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *fileLocalStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	if !existed {
		return nil
	}
	delete(s.items, key)
	if err := s.persist(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *fileLocalStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	if st.Items != nil {
		s.items = st.Items
	}

	return nil
}

func (s *fileLocalStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: create dir: %w", ErrPersistingStorage, err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistingStorage, err)
	}

	// atomic replace
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write: %w", ErrPersistingStorage, err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename: %w", ErrPersistingStorage, err)
	}

	return nil
}
