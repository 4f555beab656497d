package resetpassword

import (
	"context"
	"errors"
	"time"

	"enerbill/internal/core/domain/account"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/domain/logging"
	uow "enerbill/internal/core/domain/unit_of_work"
	"enerbill/internal/core/services"
)

type Input struct {
	DNI         account.DNI
	Token       account.ResetToken
	NewPassword account.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher account.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher account.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

// Run re-validates the token and consumes it in one transaction. The
// account row is locked for the whole validate-then-clear sequence, so
// two concurrent attempts with the same token can not both succeed.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("dni", input.DNI),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	a, err := uow.Accounts().GetByDNIForUpdate(ctx, input.DNI)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		// Collapsed with token mismatch so the reset flow does not
		// reveal whether the dni exists.
		s.log.Info(ctx, "Reset attempt for unknown dni.", logging.Entry("dni", input.DNI))
		return result, account.ErrInvalidResetToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for password reset.",
			logging.Entry("dni", input.DNI),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !a.ResetTokenIsValid(input.Token, s.now()) {
		s.log.Info(
			ctx,
			"Invalid or expired reset token presented.",
			logging.Entry("accountID", a.ID),
		)
		return result, account.ErrInvalidResetToken
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	err = uow.Accounts().SetPasswordAndClearResetToken(ctx, a.ID, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update password.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been set, reset token consumed.",
		logging.Entry("accountID", a.ID),
	)
	return Result{}, nil
}
