// Package flow runs the signup, login and profile screens for a session.
package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hatchdotlol/geosignup/pkg/documents"
	"github.com/hatchdotlol/geosignup/pkg/geo"
	"github.com/hatchdotlol/geosignup/pkg/kv"
	"github.com/hatchdotlol/geosignup/pkg/models"
	"github.com/hatchdotlol/geosignup/pkg/validate"
)

const (
	SignedUpMessage = "User signed up successfully!"
	WelcomeMessage  = "Welcome to your Profile!"
)

type App struct {
	Users       documents.Collection
	Local       kv.Store
	LocationKey string

	// SurfaceErrorDetail appends the underlying error to remote write and
	// location failure messages.
	SurfaceErrorDetail bool

	// OnSignup runs after a registration document was written.
	OnSignup func(models.SignupRecord)
}

// Result is the outcome of one user action. Err is nil on success; Message is
// what the user should be told either way.
type Result struct {
	Screen  Screen
	Message string
	Err     error
}

func (r Result) Ok() bool {
	return r.Err == nil
}

func failed(s *Session, err error, message string) Result {
	return Result{Screen: s.Screen(), Message: message, Err: err}
}

func (a *App) message(prefix string, err error) string {
	if a.SurfaceErrorDetail {
		return prefix + " " + err.Error()
	}
	return prefix
}

// Signup validates the session's form and appends it to the user collection.
// Only a successful write moves the session on to Login.
func (a *App) Signup(ctx context.Context, s *Session) Result {
	if s.Screen() != Signup {
		return failed(s, ErrWrongScreen, ErrWrongScreen.Error())
	}

	in := s.Input()

	if err := validate.Validate(in); err != nil {
		return failed(s, err, err.Error())
	}

	rec := models.SignupRecord{
		Username: in.Username,
		Email:    in.Email,
		Phone:    in.Phone,
	}

	if _, err := a.Users.Add(ctx, rec); err != nil {
		return failed(s, &RemoteWriteError{Err: err}, a.message("Error storing user data:", err))
	}

	if a.OnSignup != nil {
		a.OnSignup(rec)
	}

	if err := s.Navigate(Login); err != nil {
		return failed(s, err, err.Error())
	}

	return Result{Screen: s.Screen(), Message: SignedUpMessage}
}

// Login asks p for a single fix, keeps it in local storage and moves the
// session on to Profile. There is no credential check beyond a non-empty
// username, and no timeout other than ctx.
func (a *App) Login(ctx context.Context, s *Session, p geo.Provider) Result {
	if s.Screen() != Login {
		return failed(s, ErrWrongScreen, ErrWrongScreen.Error())
	}

	if s.Input().Username == "" {
		return failed(s, ErrNoUsername, ErrNoUsername.Message)
	}

	fix, err := p.CurrentPosition(ctx)
	if err != nil {
		return failed(s, &LocationError{Err: err}, a.message("Error fetching location:", err))
	}

	value, err := json.Marshal(fix)
	if err != nil {
		return failed(s, &LocationError{Err: err}, a.message("Error saving location:", err))
	}

	if err := a.Local.Set(ctx, s.Id, a.LocationKey, string(value)); err != nil {
		return failed(s, &LocationError{Err: err}, a.message("Error saving location:", err))
	}

	if err := s.Navigate(Profile); err != nil {
		return failed(s, err, err.Error())
	}

	return Result{Screen: s.Screen()}
}

type ProfileView struct {
	Welcome  string
	Location *models.LocationFix
}

// Text renders the view the way the profile screen shows it.
func (v ProfileView) Text() string {
	if v.Location == nil {
		return v.Welcome
	}
	return fmt.Sprintf(
		"%s\nYour Location: Latitude %s, Longitude %s",
		v.Welcome,
		strconv.FormatFloat(v.Location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(v.Location.Longitude, 'f', -1, 64),
	)
}

// Profile reads the stored fix once. A missing fix is not an error.
func (a *App) Profile(ctx context.Context, s *Session) (ProfileView, error) {
	if s.Screen() != Profile {
		return ProfileView{}, ErrWrongScreen
	}

	view := ProfileView{Welcome: WelcomeMessage}

	value, ok, err := a.Local.Get(ctx, s.Id, a.LocationKey)
	if err != nil {
		return ProfileView{}, err
	}
	if !ok {
		return view, nil
	}

	var fix models.LocationFix
	if err := json.Unmarshal([]byte(value), &fix); err != nil {
		return ProfileView{}, fmt.Errorf("stored location is corrupt: %w", err)
	}
	view.Location = &fix

	return view, nil
}
