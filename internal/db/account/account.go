package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"enerbill/internal/core/domain/account"
	c "enerbill/internal/core/domain/common"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const USERNAME_CONSTRAINT_NAME = "account_username_idx"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"
const DNI_CONSTRAINT_NAME = "account_dni_idx"

const accountColumns = `id, first_name, paternal_surname, maternal_surname, dni, email,
	phone, username, password_hash, created_at, reset_token, reset_token_expires_at`

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// repository works standalone and inside a unit of work.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxAccountRepository struct {
	db DBTX
}

func NewPgxRepository(db DBTX) *PgxAccountRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxAccountRepository{db: db}
}

func (r *PgxAccountRepository) Create(
	ctx context.Context,
	input account.CreateAccountInput,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO account (
			first_name, paternal_surname, maternal_surname, dni, email,
			phone, username, password_hash, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+accountColumns,
		input.FirstName,
		input.PaternalSurname,
		input.MaternalSurname,
		string(input.DNI),
		string(input.Email),
		input.Phone,
		input.Username,
		string(input.PasswordHash),
		input.CreatedAt,
	)
	a, err = decodeAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		switch pgErr.ConstraintName {
		case USERNAME_CONSTRAINT_NAME:
			return a, account.NewConflictError(account.ConflictUsername)
		case EMAIL_CONSTRAINT_NAME:
			return a, account.NewConflictError(account.ConflictEmail)
		case DNI_CONSTRAINT_NAME:
			return a, account.NewConflictError(account.ConflictDNI)
		}
	}
	if err != nil {
		return a, err
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

func (r *PgxAccountRepository) GetByUsername(
	ctx context.Context,
	username string,
) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE username = $1`,
		username,
	)
	return decodeExistingAccount(row)
}

func (r *PgxAccountRepository) GetByDNI(
	ctx context.Context,
	dni account.DNI,
) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE dni = $1`,
		string(dni),
	)
	return decodeExistingAccount(row)
}

func (r *PgxAccountRepository) GetByDNIForUpdate(
	ctx context.Context,
	dni account.DNI,
) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE dni = $1 FOR UPDATE`,
		string(dni),
	)
	return decodeExistingAccount(row)
}

func (r *PgxAccountRepository) FindConflicts(
	ctx context.Context,
	username string,
	email c.Email,
	dni account.DNI,
) ([]account.Conflict, error) {
	var hasUsername, hasEmail, hasDNI bool
	err := r.db.QueryRow(
		ctx,
		`SELECT
			EXISTS (SELECT 1 FROM account WHERE username = $1),
			EXISTS (SELECT 1 FROM account WHERE email = $2),
			EXISTS (SELECT 1 FROM account WHERE dni = $3)`,
		username,
		string(email),
		string(dni),
	).Scan(&hasUsername, &hasEmail, &hasDNI)
	if err != nil {
		return nil, err
	}

	conflicts := make([]account.Conflict, 0, 3)
	if hasUsername {
		conflicts = append(conflicts, account.ConflictUsername)
	}
	if hasEmail {
		conflicts = append(conflicts, account.ConflictEmail)
	}
	if hasDNI {
		conflicts = append(conflicts, account.ConflictDNI)
	}
	return conflicts, nil
}

func (r *PgxAccountRepository) SetResetToken(
	ctx context.Context,
	input account.SetResetTokenInput,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE account SET reset_token = $2, reset_token_expires_at = $3 WHERE id = $1`,
		int64(input.AccountID),
		string(input.Token),
		input.ExpiresAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) SetPasswordAndClearResetToken(
	ctx context.Context,
	id account.ID,
	passwordHash account.PasswordHash,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE account
		SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL
		WHERE id = $1`,
		int64(id),
		string(passwordHash),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) UpdateContact(
	ctx context.Context,
	input account.UpdateContactInput,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE account SET email = $2, phone = $3 WHERE username = $1
		RETURNING `+accountColumns,
		input.Username,
		string(input.Email),
		input.Phone,
	)
	a, err = decodeExistingAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
		pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
		return a, account.NewConflictError(account.ConflictEmail)
	}
	return a, err
}

func decodeExistingAccount(row pgx.Row) (account.Account, error) {
	a, err := decodeAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	return a, err
}

func decodeAccount(row pgx.Row) (a account.Account, err error) {
	var id int64
	var dni, email, passwordHash string
	var createdAt time.Time
	var resetToken sql.NullString
	var resetTokenExpiresAt sql.NullTime
	err = row.Scan(
		&id,
		&a.FirstName,
		&a.PaternalSurname,
		&a.MaternalSurname,
		&dni,
		&email,
		&a.Phone,
		&a.Username,
		&passwordHash,
		&createdAt,
		&resetToken,
		&resetTokenExpiresAt,
	)
	if err != nil {
		return a, err
	}
	a.ID = account.ID(id)
	a.DNI = account.DNI(dni)
	a.Email = c.Email(email)
	a.PasswordHash = account.PasswordHash(passwordHash)
	a.CreatedAt = createdAt
	a.ResetToken = c.NewOptional(account.ResetToken(resetToken.String), resetToken.Valid)
	a.ResetTokenExpiresAt = c.NewOptional(resetTokenExpiresAt.Time, resetTokenExpiresAt.Valid)
	return a, nil
}
