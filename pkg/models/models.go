package models

// UserInput is the signup form as typed by the user. Nothing is enforced on it
// until submission.
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// FieldUpdate carries the fields changed by one or more keystrokes. Nil fields
// are left untouched.
type FieldUpdate struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// Apply merges the non-nil fields of u into in.
func (u FieldUpdate) Apply(in *UserInput) {
	if u.Username != nil {
		in.Username = *u.Username
	}
	if u.Password != nil {
		in.Password = *u.Password
	}
	if u.Email != nil {
		in.Email = *u.Email
	}
	if u.Phone != nil {
		in.Phone = *u.Phone
	}
}

// SignupRecord is the document appended to the remote collection. The password
// is never part of it.
type SignupRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type LocationFix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type FormResp struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type SessionResp struct {
	Id     string    `json:"id"`
	Screen string    `json:"screen"`
	Form   *FormResp `json:"form,omitempty"`
}

type ResultResp struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
	Screen  string `json:"screen"`
	Kind    string `json:"kind,omitempty"`
	Rule    string `json:"rule,omitempty"`
}

type ProfileResp struct {
	Welcome  string       `json:"welcome"`
	Location *LocationFix `json:"location,omitempty"`
	Text     string       `json:"text"`
}

// ReportedLocation is what a device may send along with a login: either a fix
// or the error its location provider raised.
type ReportedLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error"`
}
