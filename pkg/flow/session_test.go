package flow

import (
	"testing"

	"github.com/hatchdotlol/geosignup/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestNavigate(t *testing.T) {
	s := NewSession("s1", nil)
	require.Equal(t, Signup, s.Screen())

	require.ErrorIs(t, s.Navigate(Profile), ErrInvalidTransition)
	require.NoError(t, s.Navigate(Signup))
	require.NoError(t, s.Navigate(Login))
	require.ErrorIs(t, s.Navigate(Signup), ErrInvalidTransition)
	require.NoError(t, s.Navigate(Profile))

	for _, to := range []Screen{Signup, Login} {
		require.ErrorIs(t, s.Navigate(to), ErrInvalidTransition)
	}
	require.Equal(t, Profile, s.Screen())
}

func TestUpdate_Merges(t *testing.T) {
	s := NewSession("s1", nil)
	s.Update(models.FieldUpdate{Username: str("Ali")})
	s.Update(models.FieldUpdate{Email: str("a@b.com")})
	s.Update(models.FieldUpdate{Username: str("Alia")})

	require.Equal(t, models.UserInput{Username: "Alia", Email: "a@b.com"}, s.Input())
}

func TestSessions(t *testing.T) {
	var got []Transition
	ss := NewSessions(func(t Transition) { got = append(got, t) })

	a, err := ss.New()
	require.NoError(t, err)
	b, err := ss.New()
	require.NoError(t, err)
	require.NotEqual(t, a.Id, b.Id)
	require.Equal(t, 2, ss.Len())

	found, ok := ss.Get(a.Id)
	require.True(t, ok)
	require.Same(t, a, found)
	require.Equal(t, models.UserInput{}, found.Input())

	require.NoError(t, a.Navigate(Login))
	require.Equal(t, []Transition{{Session: a.Id, From: Signup, To: Login}}, got)

	ss.Remove(a.Id)
	_, ok = ss.Get(a.Id)
	require.False(t, ok)
	require.Equal(t, 1, ss.Len())
}
