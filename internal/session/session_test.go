package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzscout/tzscout/internal/session"
)

func TestSessionRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := session.Open(logrus.New(), path)
	_, ok := s.Token()
	assert.False(t, ok)

	require.NoError(t, s.Login("tok-123", &session.Profile{Name: "Alice", Email: "alice@example.com"}))

	// a fresh open must see what was persisted
	s = session.Open(logrus.New(), path)
	token, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)

	profile, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, "Alice", profile.Name)
}

func TestSessionLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := session.Open(logrus.New(), path)
	require.NoError(t, s.Login("tok-123", nil))
	require.NoError(t, s.Logout())

	_, ok := s.Token()
	assert.False(t, ok)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// logging out twice is fine
	require.NoError(t, s.Logout())
}

func TestSessionCorruptFileIsRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := session.Open(logrus.New(), path)
	_, ok := s.Token()
	assert.False(t, ok)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSessionMissingFileStartsLoggedOut(t *testing.T) {
	s := session.Open(logrus.New(), filepath.Join(t.TempDir(), "nope.json"))
	_, ok := s.Token()
	assert.False(t, ok)
	_, ok = s.Profile()
	assert.False(t, ok)
}
