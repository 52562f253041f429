package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/ineqquest/internal/generator"
)

// Store keeps live sessions in memory, keyed by id. Access is guarded
// because a student may have several tabs open on the same session.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Tracker
	gen      *generator.Generator
	ttl      time.Duration
}

// NewStore creates a store whose sessions expire after ttl of
// inactivity.
func NewStore(gen *generator.Generator, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Tracker),
		gen:      gen,
		ttl:      ttl,
	}
}

// Create starts a new session with a generated id.
func (s *Store) Create() *Tracker {
	t := NewTracker(uuid.New().String(), s.gen)
	s.mu.Lock()
	s.sessions[t.ID] = t
	s.mu.Unlock()
	return t
}

// Get returns the session for id, refreshing its idle timer.
func (s *Store) Get(id string) (*Tracker, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.sessions[id]
	if ok {
		t.LastSeen = time.Now()
	}
	return t, ok
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune drops sessions idle longer than the store's ttl and returns how
// many were removed.
func (s *Store) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, t := range s.sessions {
		if now.Sub(t.LastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
