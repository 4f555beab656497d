package registeraccount

import (
	"context"
	"errors"
	"time"

	"enerbill/internal/core/domain/account"
	c "enerbill/internal/core/domain/common"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/domain/logging"
	uow "enerbill/internal/core/domain/unit_of_work"
	"enerbill/internal/core/services"
)

type Input struct {
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	DNI             account.DNI
	Email           c.Email
	Phone           string
	Username        string
	Password        account.RawPassword
}

type Result struct {
	Account account.Account
}

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

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	conflicts, err := uow.Accounts().FindConflicts(ctx, input.Username, input.Email, input.DNI)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not check for registration conflicts.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	if len(conflicts) > 0 {
		s.log.Info(
			ctx,
			"Registration conflicts with existing accounts.",
			logging.Entry("username", input.Username),
			logging.Entry("conflicts", conflicts),
		)
		return result, account.NewConflictError(conflicts...)
	}

	createdAccount, err := uow.Accounts().Create(ctx, account.CreateAccountInput{
		FirstName:       input.FirstName,
		PaternalSurname: input.PaternalSurname,
		MaternalSurname: input.MaternalSurname,
		DNI:             input.DNI,
		Email:           input.Email,
		Phone:           input.Phone,
		Username:        input.Username,
		PasswordHash:    passwordHash,
		CreatedAt:       s.now(),
	})
	var conflictErr *account.ConflictError
	if errors.As(err, &conflictErr) {
		// Lost a race with a concurrent registration between the
		// conflict check and the insert.
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new account.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New account has been registered.",
		logging.Entry("accountID", createdAccount.ID),
		logging.Entry("username", createdAccount.Username),
	)
	return Result{Account: createdAccount}, nil
}
