package service

import (
	"sync"

	"github.com/zenstudio/sessions-client/internal/core/domain"
)

// SessionState is the single source of truth for "who is logged in". It is
// purely in-memory, holds state only for the lifetime of the process, and
// performs no network calls. Construct one explicitly and inject it into
// every component that needs it; there is no package-level instance.
type SessionState struct {
	mu       sync.Mutex
	identity *domain.SessionIdentity
	nextSub  int
	subs     map[int]func(loggedIn bool)
	order    []int
}

func NewSessionState() *SessionState {
	return &SessionState{subs: make(map[int]func(bool))}
}

// LogIn replaces the current identity unconditionally. Subscribers are
// notified with true if the status actually transitioned; a re-login while
// already logged in swaps the identity silently.
func (s *SessionState) LogIn(identity domain.SessionIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasLoggedIn := s.identity != nil
	id := identity
	s.identity = &id
	if !wasLoggedIn {
		s.broadcast(true)
	}
}

// LogOut clears the identity and notifies subscribers with false. Calling it
// while already logged out is a safe no-op and emits nothing.
func (s *SessionState) LogOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return
	}
	s.identity = nil
	s.broadcast(false)
}

// LoggedIn reports the current authentication status. It is always a
// projection of identity presence, never stored separately.
func (s *SessionState) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// Identity returns a copy of the current identity, if any.
func (s *SessionState) Identity() (domain.SessionIdentity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return domain.SessionIdentity{}, false
	}
	return *s.identity, true
}

// Subscribe registers fn and immediately invokes it with the current status,
// then once per subsequent transition, in the order transitions were applied.
// Delivery is synchronous: fn runs on the caller's goroutine (replay) or the
// mutator's goroutine (transitions) and must not call back into the store.
// The returned handle is passed to Unsubscribe.
func (s *SessionState) Subscribe(fn func(loggedIn bool)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.order = append(s.order, id)

	fn(s.identity != nil)
	return id
}

// Unsubscribe removes a subscriber. Unknown handles are ignored.
func (s *SessionState) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[id]; !ok {
		return
	}
	delete(s.subs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// broadcast delivers one notification to every subscriber in registration
// order. Callers must hold s.mu, which is what serialises transitions and
// keeps every subscriber seeing the same sequence.
func (s *SessionState) broadcast(loggedIn bool) {
	for _, id := range s.order {
		if fn, ok := s.subs[id]; ok {
			fn(loggedIn)
		}
	}
}
