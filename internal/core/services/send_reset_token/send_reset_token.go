package sendresettoken

import (
	"context"
	"errors"
	"time"

	"enerbill/internal/core/domain/account"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/domain/logging"
	"enerbill/internal/core/services"
)

type Input struct {
	DNI account.DNI
}

func (i Input) GetRateLimitKey() string {
	return "send-reset-token::" + string(i.DNI)
}

type Result struct {
	Token account.ResetToken
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
	tokenGenerator    account.ResetTokenGenerator
	tokenSender       account.ResetTokenSender
	tokenValidFor     time.Duration
	now               func() time.Time
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
	tokenGenerator account.ResetTokenGenerator,
	tokenSender account.ResetTokenSender,
	tokenValidFor time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if tokenSender == nil {
		panic(e.NewNilArgumentError("tokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		tokenGenerator:    tokenGenerator,
		tokenSender:       tokenSender,
		tokenValidFor:     tokenValidFor,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByDNI(ctx, input.DNI)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Recovery requested for unknown dni.", logging.Entry("dni", input.DNI))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for recovery request.",
			logging.Entry("dni", input.DNI),
			logging.Entry("err", err),
		)
		return result, err
	}

	token := s.tokenGenerator.GenerateResetToken()
	expiresAt := s.now().Add(s.tokenValidFor)

	// Replaces any previously issued token; re-requesting recovery
	// simply invalidates the old token.
	err = s.accountRepository.SetResetToken(ctx, account.SetResetTokenInput{
		AccountID: a.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not persist reset token.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.tokenSender.SendResetToken(ctx, a, token); err != nil {
		// The token stays persisted; the user can simply request a
		// fresh one, which replaces this one.
		s.log.Error(
			ctx,
			"Could not deliver reset token.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, account.ErrResetTokenDeliveryFailed
	}

	s.log.Info(
		ctx,
		"Reset token has been issued and sent.",
		logging.Entry("accountID", a.ID),
		logging.Entry("expiresAt", expiresAt),
	)
	return Result{Token: token}, nil
}
