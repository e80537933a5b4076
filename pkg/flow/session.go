package flow

import (
	"sync"

	"github.com/hatchdotlol/geosignup/pkg/models"
	"github.com/hatchdotlol/geosignup/pkg/util"
)

// Session owns one client's form and current screen. The lock only guards
// field access; it is never held across I/O, so overlapping submissions from
// the same client are not serialized.
type Session struct {
	Id string

	mu     sync.Mutex
	screen Screen
	input  models.UserInput
	notify func(Transition)
}

func NewSession(id string, notify func(Transition)) *Session {
	return &Session{Id: id, screen: InitialScreen, notify: notify}
}

func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Input returns a copy of the form.
func (s *Session) Input() models.UserInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Session) Update(u models.FieldUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Apply(&s.input)
}

type Sessions struct {
	lock         sync.RWMutex
	sessions     map[string]*Session
	onTransition func(Transition)
}

// NewSessions creates an empty registry. onTransition may be nil.
func NewSessions(onTransition func(Transition)) *Sessions {
	return &Sessions{
		sessions:     make(map[string]*Session),
		onTransition: onTransition,
	}
}

// New mounts a fresh session on the initial screen with an empty form.
func (ss *Sessions) New() (*Session, error) {
	id, err := util.GenerateId(18)
	if err != nil {
		return nil, err
	}

	s := NewSession(id, ss.onTransition)

	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.sessions[id] = s

	return s, nil
}

func (ss *Sessions) Get(id string) (*Session, bool) {
	ss.lock.RLock()
	defer ss.lock.RUnlock()
	s, ok := ss.sessions[id]
	return s, ok
}

// Remove unmounts a session. Whatever it stored locally stays.
func (ss *Sessions) Remove(id string) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	delete(ss.sessions, id)
}

func (ss *Sessions) Len() int {
	ss.lock.RLock()
	defer ss.lock.RUnlock()
	return len(ss.sessions)
}
