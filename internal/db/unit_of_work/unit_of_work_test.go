package uow

import (
	"context"
	"testing"
	"time"

	"enerbill/internal/core/domain/account"
	c "enerbill/internal/core/domain/common"
	"enerbill/internal/db"
	dbaccount "enerbill/internal/db/account"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createAccount() account.Account {
	a, err := dbaccount.NewPgxRepository(suite.pool).Create(
		context.Background(),
		account.CreateAccountInput{
			DNI:          account.DNI("12345678"),
			Email:        c.Email("jperez@test.test"),
			Phone:        "987654321",
			Username:     "jperez",
			PasswordHash: account.PasswordHash("hash"),
			CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
		},
	)
	suite.Require().Nil(err)
	return a
}

func (suite *testSuite) TestRollback() {
	ctx := context.Background()
	created := suite.createAccount()

	uow, err := suite.uow.Begin(ctx)
	suite.Require().Nil(err)
	err = uow.Accounts().SetResetToken(ctx, account.SetResetTokenInput{
		AccountID: created.ID,
		Token:     account.ResetToken("aaaa2b9c4d8e1f3a5b7c9d0e2f4a6b8c0d1eaaaa"),
		ExpiresAt: time.Now().UTC().Add(15 * time.Minute),
	})
	suite.Require().Nil(err)
	suite.Require().Nil(uow.Rollback(ctx))

	a, err := dbaccount.NewPgxRepository(suite.pool).GetByDNI(ctx, created.DNI)
	suite.Require().Nil(err)
	suite.Require().False(a.ResetToken.IsPresent)
}

func (suite *testSuite) TestCommit() {
	ctx := context.Background()
	created := suite.createAccount()

	uow, err := suite.uow.Begin(ctx)
	suite.Require().Nil(err)
	err = uow.Accounts().SetResetToken(ctx, account.SetResetTokenInput{
		AccountID: created.ID,
		Token:     account.ResetToken("aaaa2b9c4d8e1f3a5b7c9d0e2f4a6b8c0d1eaaaa"),
		ExpiresAt: time.Now().UTC().Add(15 * time.Minute),
	})
	suite.Require().Nil(err)
	suite.Require().Nil(uow.Commit(ctx))

	a, err := dbaccount.NewPgxRepository(suite.pool).GetByDNI(ctx, created.DNI)
	suite.Require().Nil(err)
	suite.Require().True(a.ResetToken.IsPresent)
}
