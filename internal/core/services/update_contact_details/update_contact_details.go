package updatecontactdetails

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
	Email    c.Email
	Phone    string
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
	updated, err := s.accountRepository.UpdateContact(ctx, account.UpdateContactInput{
		Username: input.Username,
		Email:    input.Email,
		Phone:    input.Phone,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	var conflictErr *account.ConflictError
	if errors.As(err, &conflictErr) {
		s.log.Info(
			ctx,
			"Contact update conflicts with an existing account.",
			logging.Entry("username", input.Username),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update contact details.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Contact details have been updated.",
		logging.Entry("accountID", updated.ID),
	)
	return Result{Email: updated.Email, Phone: updated.Phone}, nil
}
