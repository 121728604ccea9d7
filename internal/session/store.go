// Package session stores server-side handshake instances between the
// two SRP round trips. The protocol core does no multiplexing; a
// transport embedding it keeps one srp.Server per outstanding handshake
// and needs a way to find it again when the client's proof arrives.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/fzdarsky/srp6go/internal/logging"
	"github.com/fzdarsky/srp6go/pkg/srp"
)

type session struct {
	server    *srp.Server
	expiresAt time.Time
}

// Store holds srp.Server instances awaiting their client proof,
// expiring and discarding abandoned handshakes after a TTL. Retrieval
// is one-time: a proof attempt consumes the session, so a failed proof
// cannot be retried against the same ephemeral keys.
type Store struct {
	sessions map[string]*session
	mu       sync.RWMutex
	ttl      time.Duration
	logger   *logging.Logger
	done     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a session store with the given TTL. Close must be
// called to stop the cleanup loop.
func NewStore(ttl time.Duration, logger *logging.Logger) *Store {
	s := &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Put saves a handshake instance and returns its session ID for the
// client to echo back with its proof.
func (s *Store) Put(server *srp.Server) (string, error) {
	idBytes := make([]byte, 16)
	if _, err := rand.Read(idBytes); err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	id := base64.URLEncoding.EncodeToString(idBytes)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &session{
		server:    server,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.logger.Debug("handshake session stored", map[string]any{
		"session_id": id,
		"active":     len(s.sessions),
	})

	return id, nil
}

// Take fetches and removes the handshake instance for the given ID.
// Returns nil if the session does not exist or has expired; expired
// instances are cleared before being dropped.
func (s *Store) Take(id string) *srp.Server {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	delete(s.sessions, id)

	if time.Now().After(sess.expiresAt) {
		sess.server.ClearSecrets()
		s.logger.Debug("handshake session expired on retrieval", map[string]any{"session_id": id})
		return nil
	}
	return sess.server
}

// Count returns the number of outstanding handshakes.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the cleanup loop and discards all outstanding handshakes.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		defer s.mu.Unlock()
		for id, sess := range s.sessions {
			sess.server.ClearSecrets()
			delete(s.sessions, id)
		}
	})
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			sess.server.ClearSecrets()
			delete(s.sessions, id)
			s.logger.Debug("handshake session expired", map[string]any{"session_id": id})
		}
	}
}
