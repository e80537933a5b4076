// Package validate checks a signup form before it is submitted.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hatchdotlol/geosignup/pkg/models"
)

type Rule string

const (
	RuleUsername Rule = "username"
	RulePassword Rule = "password"
	RuleEmail    Rule = "email"
	RulePhone    Rule = "phone"
)

const MinPasswordLength = 6

var (
	nonAlpha   = regexp.MustCompile(`[^a-zA-Z]`)
	validPhone = regexp.MustCompile(`^\+92-3[0-9]{2}-[0-9]{7}$`)
)

var messages = map[Rule]string{
	RuleUsername: "Username should contain alphabets only",
	RulePassword: "Password should be at least 6 characters long",
	RuleEmail:    "Please enter a valid email",
	RulePhone:    "Phone number should match +92-3xx-xxxxxxx",
}

type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func fail(rule Rule) error {
	return &ValidationError{Rule: rule, Message: messages[rule]}
}

// Validate returns nil if in passes every rule, or a *ValidationError for the
// first rule it breaks. Rules are checked in order: username, password, email,
// phone.
func Validate(in models.UserInput) error {
	if nonAlpha.MatchString(in.Username) {
		return fail(RuleUsername)
	}

	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return fail(RulePassword)
	}

	if !strings.Contains(in.Email, "@") {
		return fail(RuleEmail)
	}

	if !validPhone.MatchString(in.Phone) {
		return fail(RulePhone)
	}

	return nil
}
