package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"signup-cards/pkg/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session pairs a form store with the bookkeeping needed to share it between
// requests. Do serializes store operations.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	store    *FormRecordStore
	lastSeen time.Time
}

// Do runs fn against the session store and returns the resulting snapshot
func (s *Session) Do(fn func(store *FormRecordStore) error) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.store)
	return s.store.Snapshot(), err
}

// SessionRegistry keeps one FormRecordStore per UI session and drops sessions
// that have been idle longer than the timeout.
type SessionRegistry struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	timeout  time.Duration
	now      func() time.Time
}

func NewSessionRegistry(timeout time.Duration) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		now:      time.Now,
	}
}

// Create starts a new session with an empty store
func (r *SessionRegistry) Create() *Session {
	now := r.now()
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		store:     NewFormRecordStore(),
		lastSeen:  now,
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	log.Printf("Started session %s", session.ID)
	return session
}

// Get looks up a live session and marks it as used
func (r *SessionRegistry) Get(id string) (*Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[id]
	r.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	now := r.now()
	session.mu.Lock()
	expired := r.expired(session, now)
	if !expired {
		session.lastSeen = now
	}
	session.mu.Unlock()

	if expired {
		r.End(id)
		return nil, ErrSessionExpired
	}
	return session, nil
}

// End discards a session and everything its store holds
func (r *SessionRegistry) End(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	log.Printf("Ended session %s", id)
	return nil
}

// Len reports the number of tracked sessions
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes every idle session and returns how many were dropped
func (r *SessionRegistry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, session := range r.sessions {
		session.mu.Lock()
		expired := r.expired(session, now)
		session.mu.Unlock()
		if expired {
			delete(r.sessions, id)
			dropped++
		}
	}
	if dropped > 0 {
		log.Printf("Expired %d idle sessions", dropped)
	}
	return dropped
}

// Run sweeps idle sessions on an interval until ctx is done
func (r *SessionRegistry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *SessionRegistry) expired(s *Session, now time.Time) bool {
	return r.timeout > 0 && now.Sub(s.lastSeen) > r.timeout
}
