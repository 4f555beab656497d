package account

import (
	"errors"
	"strings"
)

var (
	ErrAccountDoesNotExist      = errors.New("account does not exist")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidDNI               = errors.New("dni must be exactly 8 digits")
	ErrInvalidResetToken        = errors.New("invalid or expired reset token")
	ErrResetTokenDeliveryFailed = errors.New("could not deliver reset token")
)

// Conflict names a unique account field that is already taken. The
// values double as user-facing messages.
type Conflict string

const (
	ConflictUsername Conflict = "username already registered"
	ConflictEmail    Conflict = "email already registered"
	ConflictDNI      Conflict = "dni already registered"
)

// ConflictError reports every unique-field collision found during
// registration, not just the first one.
type ConflictError struct {
	Conflicts []Conflict
}

func NewConflictError(conflicts ...Conflict) *ConflictError {
	return &ConflictError{Conflicts: conflicts}
}

func (e *ConflictError) Error() string {
	msgs := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		msgs = append(msgs, string(c))
	}
	return strings.Join(msgs, "; ")
}
