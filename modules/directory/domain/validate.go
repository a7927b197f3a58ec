package domain

import "regexp"

// FormValues are the raw field values collected by a form session before
// they are committed as a Record.
type FormValues struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
}

// emailRegex matches a minimal local@domain.tld shape.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateForm checks form values in fixed order and returns the first
// violated rule's error, or nil when all rules pass. Exactly one violation
// is reported per call; the caller re-validates after the user corrects it.
func ValidateForm(v FormValues) error {
	switch {
	case v.FirstName == "":
		return ErrFirstNameRequired
	case v.LastName == "":
		return ErrLastNameRequired
	case v.Email == "":
		return ErrEmailRequired
	case !emailRegex.MatchString(v.Email):
		return ErrEmailInvalid
	case v.Department == "":
		return ErrDepartmentRequired
	}
	return nil
}
