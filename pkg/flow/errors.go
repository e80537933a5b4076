package flow

import (
	"errors"

	"github.com/hatchdotlol/geosignup/pkg/validate"
)

var (
	ErrWrongScreen       = errors.New("not available on the current screen")
	ErrInvalidTransition = errors.New("invalid screen transition")
)

// ErrNoUsername blocks a login attempt with an empty username.
var ErrNoUsername = &validate.ValidationError{
	Rule:    validate.RuleUsername,
	Message: "Please enter a valid username",
}

// RemoteWriteError is returned when the registration document could not be
// written.
type RemoteWriteError struct {
	Err error
}

func (e *RemoteWriteError) Error() string {
	return "error storing user data: " + e.Err.Error()
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}

// LocationError is returned when no fix could be obtained or kept.
type LocationError struct {
	Err error
}

func (e *LocationError) Error() string {
	return "error fetching location: " + e.Err.Error()
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// Kind names the error class of err for clients.
func Kind(err error) string {
	var (
		verr *validate.ValidationError
		rerr *RemoteWriteError
		lerr *LocationError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return "validation"
	case errors.As(err, &rerr):
		return "remote_write"
	case errors.As(err, &lerr):
		return "location"
	case errors.Is(err, ErrWrongScreen), errors.Is(err, ErrInvalidTransition):
		return "navigation"
	}

	return "internal"
}
