// Package memory contains in-memory repositories for the media domain
package memory

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Conte777/MediaGrab/internal/domain/media/deps"
)

// sessionStore keeps one pending URL per user for the process lifetime
type sessionStore struct {
	data   map[int64]string
	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewSessionStore creates a new in-memory SessionStore
func NewSessionStore(logger zerolog.Logger) deps.SessionStore {
	return &sessionStore{
		data:   make(map[int64]string),
		logger: logger.With().Str("component", "session_store").Logger(),
	}
}

// Set stores or overwrites the pending URL for a user
func (s *sessionStore) Set(userID int64, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[userID] = url
	s.logger.Debug().
		Int64("user_id", userID).
		Msg("stored pending URL")
}

// Get returns the pending URL for a user
func (s *sessionStore) Get(userID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	url, exists := s.data[userID]
	return url, exists
}

// Take returns the pending URL for a user and removes it atomically,
// so a URL is consumed by at most one choice event
func (s *sessionStore) Take(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	url, exists := s.data[userID]
	if exists {
		delete(s.data, userID)
	}
	return url, exists
}
