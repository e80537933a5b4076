package flow

import "fmt"

type Screen string

const (
	Signup  Screen = "Signup"
	Login   Screen = "Login"
	Profile Screen = "Profile"
)

// InitialScreen is where every session starts.
const InitialScreen = Signup

// next holds the only forward move out of each screen. Profile has none.
var next = map[Screen]Screen{
	Signup: Login,
	Login:  Profile,
}

// Transition is published every time a session changes screen.
type Transition struct {
	Session string `json:"session"`
	From    Screen `json:"from"`
	To      Screen `json:"to"`
}

func CanNavigate(from, to Screen) bool {
	return next[from] == to
}

// Navigate moves s to the given screen. Navigating to the screen s is already
// on does nothing.
func (s *Session) Navigate(to Screen) error {
	s.mu.Lock()
	from := s.screen
	if from == to {
		s.mu.Unlock()
		return nil
	}
	if !CanNavigate(from, to) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	s.screen = to
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(Transition{Session: s.Id, From: from, To: to})
	}

	return nil
}
