// Package session holds per-actor volatile interaction state.
//
// State lives only in process memory; a restart forgets every selection.
// Each actor's entry carries its own mutex so that one actor's event chain
// (read, decide, mutate, publish) is serialized without blocking anyone
// else's.
package session

import "sync"

// Session is one actor's interaction state. An empty SelectedDevice means
// no device has been chosen yet.
type Session struct {
	SelectedDevice string
}

type entry struct {
	mu      sync.Mutex
	session Session
}

// Store maps actor IDs to sessions, creating entries lazily.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{entries: make(map[int64]*entry)}
}

func (s *Store) entryFor(actor int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[actor]
	if !ok {
		e = &entry{}
		s.entries[actor] = e
	}
	return e
}

// WithActor runs fn with exclusive access to the actor's session. All
// event handling for an actor goes through here, which is what serializes
// a fast double-press into two ordered steps.
func (s *Store) WithActor(actor int64, fn func(*Session)) {
	e := s.entryFor(actor)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.session)
}

// Get returns a copy of the actor's session, creating it if absent.
func (s *Store) Get(actor int64) Session {
	e := s.entryFor(actor)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Clear resets the actor's device selection.
func (s *Store) Clear(actor int64) {
	s.WithActor(actor, func(sess *Session) {
		sess.SelectedDevice = ""
	})
}

// SetDevice records the actor's selected device.
func (s *Store) SetDevice(actor int64, key string) {
	s.WithActor(actor, func(sess *Session) {
		sess.SelectedDevice = key
	})
}

// Len returns the number of sessions created so far.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
