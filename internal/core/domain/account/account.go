package account

import (
	"crypto/subtle"
	"fmt"
	"regexp"
	"time"

	c "enerbill/internal/core/domain/common"
	e "enerbill/internal/core/domain/errors"
)

type ID int64

// PasswordHash never renders its value, so hashes can not leak into
// logs through formatted entries.
type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// ResetToken is a single-use recovery secret, masked for logging the
// same way passwords are.
type ResetToken string

func (t ResetToken) String() string {
	return "***"
}

// DNI is the national identity document number, exactly 8 digits.
type DNI string

var DNIPattern = regexp.MustCompile(`^[0-9]{8}$`)

// PhonePattern accepts national and international numbers without
// separators.
var PhonePattern = regexp.MustCompile(`^[0-9]{9,15}$`)

func NewDNI(raw string) (DNI, error) {
	if !DNIPattern.MatchString(raw) {
		return "", ErrInvalidDNI
	}
	return DNI(raw), nil
}

type Account struct {
	ID                  ID
	FirstName           string
	PaternalSurname     string
	MaternalSurname     string
	DNI                 DNI
	Email               c.Email
	Phone               string
	Username            string
	PasswordHash        PasswordHash
	CreatedAt           time.Time
	ResetToken          c.Optional[ResetToken]
	ResetTokenExpiresAt c.Optional[time.Time]
}

// Validate checks the recovery-state invariant: the token and its
// expiry are either both set or both absent.
func (a *Account) Validate() error {
	if a.ResetToken.IsPresent != a.ResetTokenExpiresAt.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("reset token and expiry must be set together for account %d", a.ID),
		)
	}
	return nil
}

// ResetTokenIsValid reports whether the presented token matches the
// stored one and has not expired. Comparison is constant-time, expiry
// is exclusive: a token presented exactly at its expiry instant is
// already invalid.
func (a *Account) ResetTokenIsValid(token ResetToken, now time.Time) bool {
	if !a.ResetToken.IsPresent || !a.ResetTokenExpiresAt.IsPresent {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(a.ResetToken.Value), []byte(token)) != 1 {
		return false
	}
	return now.Before(a.ResetTokenExpiresAt.Value)
}
