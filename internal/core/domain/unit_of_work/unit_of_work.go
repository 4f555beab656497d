package uow

import (
	"context"

	"enerbill/internal/core/domain/account"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Accounts() account.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
