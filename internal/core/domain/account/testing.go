package account

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"

	c "enerbill/internal/core/domain/common"
)

type FakeRepository struct {
	Accounts    []Account
	ReturnError bool
	// Writes counts mutating calls, so tests can assert that a
	// rejected request never touched the store.
	Writes int
	lock   sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Writes++
	conflicts := r.findConflicts(input.Username, input.Email, input.DNI)
	if len(conflicts) > 0 {
		return a, NewConflictError(conflicts...)
	}
	maxID := ID(0)
	for _, existing := range r.Accounts {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	a = Account{
		ID:              maxID + 1,
		FirstName:       input.FirstName,
		PaternalSurname: input.PaternalSurname,
		MaternalSurname: input.MaternalSurname,
		DNI:             input.DNI,
		Email:           input.Email,
		Phone:           input.Phone,
		Username:        input.Username,
		PasswordHash:    input.PasswordHash,
		CreatedAt:       input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeRepository) GetByUsername(ctx context.Context, username string) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account by username")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.Username == username {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByDNI(ctx context.Context, dni DNI) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account by dni")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.DNI == dni {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByDNIForUpdate(ctx context.Context, dni DNI) (a Account, err error) {
	return r.GetByDNI(ctx, dni)
}

func (r *FakeRepository) FindConflicts(
	ctx context.Context,
	username string,
	email c.Email,
	dni DNI,
) ([]Conflict, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not check conflicts")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.findConflicts(username, email, dni), nil
}

func (r *FakeRepository) findConflicts(username string, email c.Email, dni DNI) []Conflict {
	conflicts := make([]Conflict, 0, 3)
	var hasUsername, hasEmail, hasDNI bool
	for _, existing := range r.Accounts {
		hasUsername = hasUsername || existing.Username == username
		hasEmail = hasEmail || existing.Email == email
		hasDNI = hasDNI || existing.DNI == dni
	}
	if hasUsername {
		conflicts = append(conflicts, ConflictUsername)
	}
	if hasEmail {
		conflicts = append(conflicts, ConflictEmail)
	}
	if hasDNI {
		conflicts = append(conflicts, ConflictDNI)
	}
	return conflicts
}

func (r *FakeRepository) SetResetToken(ctx context.Context, input SetResetTokenInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not set reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Writes++
	for ix, existing := range r.Accounts {
		if existing.ID == input.AccountID {
			r.Accounts[ix].ResetToken = c.NewPresent(input.Token)
			r.Accounts[ix].ResetTokenExpiresAt = c.NewPresent(input.ExpiresAt)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeRepository) SetPasswordAndClearResetToken(
	ctx context.Context,
	id ID,
	passwordHash PasswordHash,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Writes++
	for ix, existing := range r.Accounts {
		if existing.ID == id {
			r.Accounts[ix].PasswordHash = passwordHash
			r.Accounts[ix].ResetToken = c.NewOptional(ResetToken(""), false)
			r.Accounts[ix].ResetTokenExpiresAt = c.NewOptional(existing.ResetTokenExpiresAt.Value, false)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeRepository) UpdateContact(ctx context.Context, input UpdateContactInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not update contact details")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Writes++
	for _, existing := range r.Accounts {
		if existing.Username != input.Username && existing.Email == input.Email {
			return a, NewConflictError(ConflictEmail)
		}
	}
	for ix, existing := range r.Accounts {
		if existing.Username == input.Username {
			r.Accounts[ix].Email = input.Email
			r.Accounts[ix].Phone = input.Phone
			return r.Accounts[ix], nil
		}
	}
	return a, ErrAccountDoesNotExist
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeResetTokenGenerator struct {
	Token ResetToken
}

func NewFakeResetTokenGenerator(token string) *FakeResetTokenGenerator {
	return &FakeResetTokenGenerator{Token: ResetToken(token)}
}

func (g *FakeResetTokenGenerator) GenerateResetToken() ResetToken {
	return g.Token
}

type FakeResetTokenSender struct {
	Sent        []ResetToken
	SentTo      []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenSender() *FakeResetTokenSender {
	return &FakeResetTokenSender{}
}

func (s *FakeResetTokenSender) SendResetToken(ctx context.Context, account Account, token ResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, account)
	return nil
}

func (s *FakeResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}
