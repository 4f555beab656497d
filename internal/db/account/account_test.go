package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"enerbill/internal/core/domain/account"
	c "enerbill/internal/core/domain/common"
	"enerbill/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	USERNAME      = "jperez"
	DNI           = account.DNI("12345678")
	EMAIL         = c.Email("jperez@test.test")
	PASSWORD_HASH = account.PasswordHash("test-password-hash")
	TOKEN         = account.ResetToken("6a0f2b9c4d8e1f3a5b7c9d0e2f4a6b8c0d1e2f3a")
)

var NOW time.Time = time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxAccountRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxAccountRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createAccount() account.Account {
	a, err := suite.repo.Create(context.Background(), account.CreateAccountInput{
		FirstName:       "Juan",
		PaternalSurname: "Perez",
		MaternalSurname: "Quispe",
		DNI:             DNI,
		Email:           EMAIL,
		Phone:           "987654321",
		Username:        USERNAME,
		PasswordHash:    PASSWORD_HASH,
		CreatedAt:       NOW,
	})
	suite.Require().Nil(err)
	return a
}

func (suite *testSuite) TestCreateSuccess() {
	a := suite.createAccount()

	assert := suite.Require()
	assert.NotEqual(account.ID(0), a.ID)
	assert.Equal(USERNAME, a.Username)
	assert.Equal(DNI, a.DNI)
	assert.Equal(EMAIL, a.Email)
	assert.False(a.ResetToken.IsPresent)
	assert.False(a.ResetTokenExpiresAt.IsPresent)
}

func (suite *testSuite) TestCreateDuplicateDNI() {
	suite.createAccount()

	_, err := suite.repo.Create(context.Background(), account.CreateAccountInput{
		DNI:          DNI,
		Email:        c.Email("other@test.test"),
		Phone:        "911222333",
		Username:     "other",
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})

	var conflictErr *account.ConflictError
	suite.Require().True(errors.As(err, &conflictErr))
	suite.Require().Equal([]account.Conflict{account.ConflictDNI}, conflictErr.Conflicts)
}

func (suite *testSuite) TestGetByUsername() {
	created := suite.createAccount()

	a, err := suite.repo.GetByUsername(context.Background(), USERNAME)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)

	_, err = suite.repo.GetByUsername(context.Background(), "does-not-exist")
	assert.ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (suite *testSuite) TestGetByDNI() {
	created := suite.createAccount()

	a, err := suite.repo.GetByDNI(context.Background(), DNI)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)

	_, err = suite.repo.GetByDNI(context.Background(), account.DNI("99999999"))
	assert.ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (suite *testSuite) TestFindConflicts() {
	suite.createAccount()

	conflicts, err := suite.repo.FindConflicts(
		context.Background(),
		USERNAME,
		c.Email("novel@test.test"),
		DNI,
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.ElementsMatch(
		[]account.Conflict{account.ConflictUsername, account.ConflictDNI},
		conflicts,
	)
}

func (suite *testSuite) TestSetAndClearResetToken() {
	ctx := context.Background()
	created := suite.createAccount()
	expiresAt := NOW.Add(15 * time.Minute)

	err := suite.repo.SetResetToken(ctx, account.SetResetTokenInput{
		AccountID: created.ID,
		Token:     TOKEN,
		ExpiresAt: expiresAt,
	})
	suite.Require().Nil(err)

	a, err := suite.repo.GetByDNI(ctx, DNI)
	assert := suite.Require()
	assert.Nil(err)
	assert.True(a.ResetToken.IsPresent)
	assert.Equal(TOKEN, a.ResetToken.Value)
	assert.True(a.ResetTokenExpiresAt.IsPresent)
	assert.True(a.ResetTokenExpiresAt.Value.Equal(expiresAt))

	err = suite.repo.SetPasswordAndClearResetToken(ctx, created.ID, account.PasswordHash("new-hash"))
	assert.Nil(err)

	a, err = suite.repo.GetByDNI(ctx, DNI)
	assert.Nil(err)
	assert.Equal(account.PasswordHash("new-hash"), a.PasswordHash)
	assert.False(a.ResetToken.IsPresent)
	assert.False(a.ResetTokenExpiresAt.IsPresent)
}

func (suite *testSuite) TestSetResetTokenUnknownAccount() {
	err := suite.repo.SetResetToken(context.Background(), account.SetResetTokenInput{
		AccountID: account.ID(123456),
		Token:     TOKEN,
		ExpiresAt: NOW,
	})
	suite.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (suite *testSuite) TestUpdateContact() {
	suite.createAccount()

	a, err := suite.repo.UpdateContact(context.Background(), account.UpdateContactInput{
		Username: USERNAME,
		Email:    c.Email("new@test.test"),
		Phone:    "911222333",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(c.Email("new@test.test"), a.Email)
	assert.Equal("911222333", a.Phone)
}

func (suite *testSuite) TestUpdateContactUnknownAccount() {
	_, err := suite.repo.UpdateContact(context.Background(), account.UpdateContactInput{
		Username: "does-not-exist",
		Email:    c.Email("new@test.test"),
		Phone:    "911222333",
	})
	suite.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
}
