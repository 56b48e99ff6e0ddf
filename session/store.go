package session

import (
	"sync"
	"time"
)

// EventType classifies auth lifecycle broadcasts
type EventType string

const (
	EventSignUp EventType = "sign_up"
	EventLogin  EventType = "login"
	EventLogout EventType = "logout"
)

// Event describes one auth state change
type Event struct {
	Type   EventType
	UserID uint
	Email  string
	At     time.Time
}

// Store is the process-wide auth state hub: it broadcasts login/logout
// events to subscribers and holds the revoked-token denylist that gives
// logout a server-side effect. One instance lives for the application's
// runtime.
type Store struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry
	subs    map[int]func(Event)
	nextSub int
	closed  bool
}

func NewStore() *Store {
	return &Store{
		revoked: make(map[string]time.Time),
		subs:    make(map[int]func(Event)),
	}
}

// Subscribe registers a callback for auth events and returns its
// unsubscribe function. Unsubscribing twice is harmless.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Publish broadcasts an event to all current subscribers. Callbacks run
// outside the lock so a subscriber may subscribe/unsubscribe reentrantly.
func (s *Store) Publish(e Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// Revoke denylists a token ID until its natural expiry
func (s *Store) Revoke(jti string, expiry time.Time) {
	if jti == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = expiry
	s.prune()
}

// IsRevoked reports whether a token ID has been logged out
func (s *Store) IsRevoked(jti string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.revoked[jti]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.revoked, jti)
		return false
	}
	return true
}

// Close drops all subscribers; further publishes are no-ops
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]func(Event))
}

// prune drops expired denylist entries; caller holds the lock
func (s *Store) prune() {
	now := time.Now()
	for jti, expiry := range s.revoked {
		if now.After(expiry) {
			delete(s.revoked, jti)
		}
	}
}

// Default is the application-wide store, created at init and closed on
// shutdown
var Default = NewStore()
