// Package session holds the one process-wide authenticated session: the
// bearer token plus the cached user record, persisted to a single JSON file
// (the terminal counterpart of browser local storage).
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"digitalcafe/cafectl/internal/model"
)

type Store struct {
	path string

	mu        sync.RWMutex
	token     string
	user      *model.User
	listeners []func()
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the session file if it exists. A missing file just means
// nobody is signed in; a corrupt file is discarded the same way.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}

	s.mu.Lock()
	s.token = sess.Token
	s.user = sess.User
	s.mu.Unlock()
	return nil
}

// Set replaces the session and persists it. Listeners are notified after
// the new state is visible.
func (s *Store) Set(token string, user *model.User) error {
	s.mu.Lock()
	s.token = token
	s.user = user
	err := s.persist()
	s.mu.Unlock()

	s.notify()
	return err
}

// Clear drops the session in memory and on disk. It never fails the caller:
// logout and 401 handling must always leave the client signed out.
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	_ = os.Remove(s.path)
	s.mu.Unlock()

	s.notify()
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Role returns the cached user's role, or the empty role when signed out.
// It is derived from the local cache only, never re-verified with the server.
func (s *Store) Role() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role()
}

// IsLoggedIn is a pure token-presence check; it does not validate the token.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// OnChange registers a listener called after every Set or Clear. The
// navigation bar equivalent re-renders through this instead of re-reading
// storage ad hoc.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// persist is called with the write lock held.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	data, err := json.Marshal(model.Session{Token: s.token, User: s.user})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
