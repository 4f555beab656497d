package uow

import (
	"context"
	"fmt"
	"sync"

	"enerbill/internal/core/domain/account"
)

// FakeUnitOfWork serializes Begin..Commit/Rollback sections with a
// mutex, emulating the row-level locking the pgx implementation gets
// from SELECT ... FOR UPDATE.
type FakeUnitOfWork struct {
	AccountRepository *account.FakeRepository
	BeginError        bool
	Commits           int
	Rollbacks         int

	tx   sync.Mutex
	lock sync.Mutex
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{AccountRepository: account.NewFakeRepository()}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.BeginError {
		return nil, fmt.Errorf("could not begin unit of work")
	}
	u.tx.Lock()
	return &fakeUnitOfWorkContext{uow: u}, nil
}

type fakeUnitOfWorkContext struct {
	uow  *FakeUnitOfWork
	done bool
}

func (c *fakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.done {
		return fmt.Errorf("unit of work is already finished")
	}
	c.done = true
	c.uow.lock.Lock()
	c.uow.Commits++
	c.uow.lock.Unlock()
	c.uow.tx.Unlock()
	return nil
}

func (c *fakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	if c.done {
		return nil
	}
	c.done = true
	c.uow.lock.Lock()
	c.uow.Rollbacks++
	c.uow.lock.Unlock()
	c.uow.tx.Unlock()
	return nil
}

func (c *fakeUnitOfWorkContext) Accounts() account.Repository {
	return c.uow.AccountRepository
}
