package pgx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lborres/lawang"
)

func newMockAdapter(t *testing.T) (*Adapter, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestAdapter_CreateAccount(t *testing.T) {
	adapter, mock := newMockAdapter(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO public\.users`).
		WithArgs("alice", "alice@example.com", "$argon2id$hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	account := &lawang.Account{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$hash",
	}

	err := adapter.CreateAccount(context.Background(), account)

	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, now, account.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_CreateAccount_DuplicateEmail(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(`INSERT INTO public\.users`).
		WithArgs("alice", "alice@example.com", "$argon2id$hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	err := adapter.CreateAccount(context.Background(), &lawang.Account{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$hash",
	})

	assert.ErrorIs(t, err, lawang.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_CreateAccount_StoreFailure(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(`INSERT INTO public\.users`).
		WithArgs("alice", "alice@example.com", "$argon2id$hash").
		WillReturnError(errors.New("connection refused"))

	err := adapter.CreateAccount(context.Background(), &lawang.Account{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$hash",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, lawang.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetAccountByEmail(t *testing.T) {
	adapter, mock := newMockAdapter(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at FROM public\.users`).
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(int64(7), "alice", "alice@example.com", "$argon2id$hash", now))

	account, err := adapter.GetAccountByEmail(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "$argon2id$hash", account.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetAccountByEmail_NotFound(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at FROM public\.users`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	account, err := adapter.GetAccountByEmail(context.Background(), "nobody@example.com")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, lawang.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	adapter := New(mock)

	mock.ExpectPing()
	require.NoError(t, adapter.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, adapter.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
