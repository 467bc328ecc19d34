package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lborres/lawang"
)

// CreateAccount inserts a new account row. The unique index on email is
// the only duplicate check: a violation surfaces as ErrDuplicateEmail,
// so a race between two inserts of the same email resolves inside
// Postgres to exactly one winner.
func (a *Adapter) CreateAccount(ctx context.Context, account *lawang.Account) error {
	query := `INSERT INTO public.users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`

	var id int64
	var createdAt time.Time

	err := a.db.QueryRow(ctx, query, account.Username, account.Email, account.PasswordHash).Scan(&id, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return lawang.ErrDuplicateEmail
		}
		return err
	}

	account.ID = id
	account.CreatedAt = createdAt
	return nil
}

// GetAccountByEmail looks up an account by its exact email. No
// normalization: the match is byte-for-byte.
func (a *Adapter) GetAccountByEmail(ctx context.Context, email string) (*lawang.Account, error) {
	q := `SELECT id, username, email, password_hash, created_at FROM public.users WHERE email = $1`

	account := &lawang.Account{}
	err := a.db.QueryRow(ctx, q, email).Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lawang.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}
