package models

import (
	"errors"
	"fmt"
)

// Domain failures the request layer maps to HTTP statuses. Repositories
// return these directly; transient store errors propagate unwrapped.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAttending       = errors.New("not attending this event")
	ErrNotOwner           = errors.New("requester does not own this event")
	ErrOwnEvent           = errors.New("cannot attend an event you own")
	ErrQuotaExceeded      = errors.New("event limit reached for non-professional users")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
