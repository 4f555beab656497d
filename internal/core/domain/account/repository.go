package account

import (
	"context"
	"time"

	c "enerbill/internal/core/domain/common"
)

type CreateAccountInput struct {
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	DNI             DNI
	Email           c.Email
	Phone           string
	Username        string
	PasswordHash    PasswordHash
	CreatedAt       time.Time
}

type SetResetTokenInput struct {
	AccountID ID
	Token     ResetToken
	ExpiresAt time.Time
}

type UpdateContactInput struct {
	Username string
	Email    c.Email
	Phone    string
}

type Repository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	GetByDNI(ctx context.Context, dni DNI) (Account, error)
	// GetByDNIForUpdate acquires a row-level lock on the account so
	// that the validate-then-clear sequence of a password reset is
	// serialized per account.
	GetByDNIForUpdate(ctx context.Context, dni DNI) (Account, error)
	// FindConflicts reports every unique field among username, email
	// and dni that is already taken by an existing account.
	FindConflicts(ctx context.Context, username string, email c.Email, dni DNI) ([]Conflict, error)
	// SetResetToken unconditionally replaces the account's recovery
	// token and expiry, invalidating any previously issued token.
	SetResetToken(ctx context.Context, input SetResetTokenInput) error
	// SetPasswordAndClearResetToken writes the new credential and
	// clears both recovery columns in one statement.
	SetPasswordAndClearResetToken(ctx context.Context, id ID, passwordHash PasswordHash) error
	UpdateContact(ctx context.Context, input UpdateContactInput) (Account, error)
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}

type ResetTokenSender interface {
	SendResetToken(ctx context.Context, account Account, token ResetToken) error
}
