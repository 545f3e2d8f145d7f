package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput signals a required field was absent from the request.
	ErrMissingInput = errors.New("missing required input")
	// ErrInvalidRole signals a role outside the fixed enumeration.
	ErrInvalidRole = errors.New("invalid role selected")
	// ErrInvalidStatus signals a status other than Active/Inactive.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrUserNotFound signals no account matched the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials signals a wrong password for a demo account.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RoleMismatchError is returned when the role requested at login differs from
// the role stored on the account. Both sides are kept for diagnostics.
type RoleMismatchError struct {
	Stored    Role
	Requested string
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("user role is %s, but requested %s", e.Stored, e.Requested)
}

// IsRoleMismatch reports whether err is (or wraps) a RoleMismatchError.
func IsRoleMismatch(err error) bool {
	var rm *RoleMismatchError
	return errors.As(err, &rm)
}
