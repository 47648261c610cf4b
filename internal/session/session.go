// Package session persists the signed-in user's credential and profile
// between runs: two entries in one JSON file, read at startup, written on
// login, removed on logout. A file that fails to parse is removed and the
// explorer starts logged out.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Profile is the identity-provider profile of the signed-in user.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

type persisted struct {
	Token   string   `json:"token"`
	Profile *Profile `json:"profile,omitempty"`
}

// Store holds the current session in memory and mirrors it to disk.
// It satisfies httpmw.TokenSource.
type Store struct {
	logger *logrus.Logger
	path   string

	mu      sync.RWMutex
	token   string
	profile *Profile
}

// Open loads the session persisted at path. A missing file means logged out;
// an unreadable or unparsable file is removed and logged.
func Open(logger *logrus.Logger, path string) *Store {
	s := &Store{
		logger: logger,
		path:   path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.WithError(err).WithField("path", path).Warn("Failed to read persisted session, starting logged out")
		}
		return s
	}

	var p persisted
	err = json.Unmarshal(data, &p)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn("Persisted session is corrupt, removing it")
		_ = os.Remove(path)
		return s
	}

	s.token = p.Token
	s.profile = p.Profile
	return s
}

// Token returns the current bearer credential, if signed in.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.token != ""
}

// Profile returns the signed-in user's profile, if any.
func (s *Store) Profile() (*Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile, s.profile != nil
}

// Login stores the credential and profile and persists them.
func (s *Store) Login(token string, profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(persisted{Token: token, Profile: profile}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	err = os.MkdirAll(filepath.Dir(s.path), 0o700)
	if err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	err = os.WriteFile(s.path, data, 0o600)
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.token = token
	s.profile = profile
	return nil
}

// Logout clears the session and removes the persisted file.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.profile = nil

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove persisted session: %w", err)
	}
	return nil
}
