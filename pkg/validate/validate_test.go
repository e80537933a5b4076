package validate

import (
	"errors"
	"testing"

	"github.com/hatchdotlol/geosignup/pkg/models"
	"github.com/stretchr/testify/require"
)

func validInput() models.UserInput {
	return models.UserInput{
		Username: "Ali",
		Password: "secret1",
		Email:    "a@b.com",
		Phone:    "+92-312-3456789",
	}
}

func ruleOf(t *testing.T, err error) Rule {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a *ValidationError, got %v", err)
	return verr.Rule
}

func TestValidate_Pass(t *testing.T) {
	require.NoError(t, Validate(validInput()))
}

func TestValidate_EmptyUsernamePasses(t *testing.T) {
	in := validInput()
	in.Username = ""
	require.NoError(t, Validate(in))
}

func TestValidate_Username(t *testing.T) {
	for _, name := range []string{"Ali1", "ali baba", "al_i", "Ålí", "-", "ali!"} {
		t.Run(name, func(t *testing.T) {
			// every other field broken too: username is checked first
			in := models.UserInput{Username: name, Password: "x", Email: "nope", Phone: "123"}
			err := Validate(in)
			require.Equal(t, RuleUsername, ruleOf(t, err))
			require.Equal(t, "Username should contain alphabets only", err.Error())
		})
	}
}

func TestValidate_Password(t *testing.T) {
	for _, pw := range []string{"", "a", "12345", "ñññññ"} {
		t.Run(pw, func(t *testing.T) {
			in := validInput()
			in.Password = pw
			in.Email = "broken"
			require.Equal(t, RulePassword, ruleOf(t, Validate(in)))
		})
	}

	in := validInput()
	in.Password = "123456"
	require.NoError(t, Validate(in))
}

func TestValidate_Email(t *testing.T) {
	for _, email := range []string{"", "ab.com", "a.b"} {
		in := validInput()
		in.Email = email
		in.Phone = "broken"
		require.Equal(t, RuleEmail, ruleOf(t, Validate(in)))
	}

	in := validInput()
	in.Email = "@"
	require.NoError(t, Validate(in))
}

func TestValidate_Phone(t *testing.T) {
	bad := []string{
		"",
		"+92-312-345678",
		"+92-312-34567890",
		"+92-412-3456789",
		"+93-312-3456789",
		"92-312-3456789",
		"+92 312 3456789",
		"+92-3a2-3456789",
		" +92-312-3456789",
		"+92-312-3456789\n",
		"+92-312-345678٩",
	}
	for _, phone := range bad {
		t.Run(phone, func(t *testing.T) {
			in := validInput()
			in.Phone = phone
			require.Equal(t, RulePhone, ruleOf(t, Validate(in)))
		})
	}
}

func TestValidate_PasswordCountsRunes(t *testing.T) {
	in := validInput()

	in.Password = "😀😀😀"
	require.Equal(t, RulePassword, ruleOf(t, Validate(in)))

	in.Password = "😀😀😀😀😀😀"
	require.NoError(t, Validate(in))
}
