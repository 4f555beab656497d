package registeraccount

import (
	"context"
	"errors"
	"testing"
	"time"

	"enerbill/internal/core/domain/account"
	c "enerbill/internal/core/domain/common"
	"enerbill/internal/core/domain/logging"
	uow "enerbill/internal/core/domain/unit_of_work"
	"enerbill/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const (
	USERNAME = "jperez"
	DNI      = account.DNI("12345678")
	EMAIL    = c.Email("jperez@test.test")
	PASSWORD = account.RawPassword("secret-password")
)

var NOW = time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *account.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = account.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestRegisterAccountService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) registerInput() Input {
	return Input{
		FirstName:       "Juan",
		PaternalSurname: "Perez",
		MaternalSurname: "Quispe",
		DNI:             DNI,
		Email:           EMAIL,
		Phone:           "987654321",
		Username:        USERNAME,
		Password:        PASSWORD,
	}
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), suite.registerInput())

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(account.ID(0), result.Account.ID)
	assert.Equal(USERNAME, result.Account.Username)
	assert.Equal(DNI, result.Account.DNI)
	assert.Equal(NOW, result.Account.CreatedAt)
	assert.NotEqual(string(PASSWORD), string(result.Account.PasswordHash))
	assert.False(result.Account.ResetToken.IsPresent)
	assert.Equal(1, suite.UnitOfWork.Commits)
}

func (suite *testSuite) TestDNIConflict() {
	ctx := context.Background()
	suite.UnitOfWork.AccountRepository.Create(ctx, account.CreateAccountInput{
		DNI:          DNI,
		Email:        c.Email("other@test.test"),
		Username:     "other",
		PasswordHash: account.PasswordHash("hash"),
		CreatedAt:    NOW,
	})

	input := suite.registerInput()
	_, err := suite.Service.Run(ctx, input)

	assert := suite.Require()
	var conflictErr *account.ConflictError
	assert.True(errors.As(err, &conflictErr))
	assert.Equal([]account.Conflict{account.ConflictDNI}, conflictErr.Conflicts)
	assert.Contains(conflictErr.Error(), "dni already registered")
	assert.Equal(0, suite.UnitOfWork.Commits)
	assert.Equal(1, suite.UnitOfWork.Rollbacks)
}

func (suite *testSuite) TestAllConflictsReportedTogether() {
	ctx := context.Background()
	suite.UnitOfWork.AccountRepository.Create(ctx, account.CreateAccountInput{
		DNI:          DNI,
		Email:        EMAIL,
		Username:     USERNAME,
		PasswordHash: account.PasswordHash("hash"),
		CreatedAt:    NOW,
	})

	_, err := suite.Service.Run(ctx, suite.registerInput())

	assert := suite.Require()
	var conflictErr *account.ConflictError
	assert.True(errors.As(err, &conflictErr))
	assert.ElementsMatch(
		[]account.Conflict{account.ConflictUsername, account.ConflictEmail, account.ConflictDNI},
		conflictErr.Conflicts,
	)
}

func (suite *testSuite) TestPasswordIsHashedBeforePersistence() {
	result, err := suite.Service.Run(context.Background(), suite.registerInput())

	assert := suite.Require()
	assert.Nil(err)
	expectedHash, _ := suite.PasswordHasher.HashPassword(PASSWORD)
	assert.Equal(expectedHash, result.Account.PasswordHash)
}
