package login

import (
	"context"
	"errors"

	"enerbill/internal/core/domain/account"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/domain/logging"
	"enerbill/internal/core/services"
)

type Input struct {
	Username string
	Password account.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "log-in::" + i.Username
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
	passwordHasher    account.PasswordHasher
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
	passwordHasher account.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		// Minimize risk for timing attacks; the caller still only
		// sees generic invalid credentials.
		s.passwordHasher.HashPassword(input.Password)
		s.log.Info(ctx, "Log in attempt for unknown username.", logging.Entry("username", input.Username))
		return result, account.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for log in.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !s.passwordHasher.ValidatePassword(input.Password, a.PasswordHash) {
		s.log.Info(ctx, "Invalid password presented.", logging.Entry("accountID", a.ID))
		return result, account.ErrInvalidCredentials
	}

	s.log.Info(ctx, "Account successfully authenticated.", logging.Entry("accountID", a.ID))
	return Result{Account: a}, nil
}
