package domain

import "errors"

// Validation errors - one per form rule. The messages are user-facing: the
// form session surfaces Error() verbatim as the inline form error, so they
// keep their display capitalization and punctuation.
var (
	ErrFirstNameRequired  = errors.New("First Name is required.")
	ErrLastNameRequired   = errors.New("Last Name is required.")
	ErrEmailRequired      = errors.New("Email is required.")
	ErrEmailInvalid       = errors.New("Invalid email address.")
	ErrDepartmentRequired = errors.New("Department is required.")
)

// ErrFetchFailed is the collection-wide error state when the remote load
// fails. The only recovery is a session restart.
var ErrFetchFailed = errors.New("Failed to fetch users")

// ErrRecordNotFound indicates an intent referenced an id that is not in the
// current collection.
var ErrRecordNotFound = errors.New("record not found")
