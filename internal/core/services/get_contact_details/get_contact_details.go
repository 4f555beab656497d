package getcontactdetails

import (
	"context"
	"errors"

	"enerbill/internal/core/domain/account"
	c "enerbill/internal/core/domain/common"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/domain/logging"
	"enerbill/internal/core/services"
)

type Input struct {
	Username string
}

type Result struct {
	Email c.Email
	Phone string
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	return &service{log: log, accountRepository: accountRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get contact details.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Email: a.Email, Phone: a.Phone}, nil
}
