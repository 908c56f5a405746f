package portal

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIdentity is returned by signup when the name or the student
	// number is already taken.
	ErrDuplicateIdentity = errors.New("user already exists with this name or student number")
	// ErrInvalidCredentials is returned by login when no account matches.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordMismatch is returned by signup when the confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrInvalidSignup is returned by signup when a form field is missing or malformed.
	ErrInvalidSignup = errors.New("invalid signup form")
)

// MalformedFieldError describes a persisted field that was not in canonical
// form. It never reaches a user: the repairer fixes the field and logs it.
type MalformedFieldError struct {
	Account string // student number
	Field   string // e.g. "ledger[2].amount"
	Value   string
	Fixed   string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %s of %q: %q rewritten as %q", e.Field, e.Account, e.Value, e.Fixed)
}
