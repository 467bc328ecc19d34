package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/lborres/lawang"
)

// DB is the subset of pgxpool.Pool the adapter uses. *pgxpool.Pool
// satisfies it in production; tests substitute a pgxmock pool.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type Adapter struct {
	db DB
}

var _ lawang.CredentialStore = (*Adapter)(nil)

func New(db DB) *Adapter {
	return &Adapter{db: db}
}

// Ping reports store connectivity.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.db.Ping(ctx)
}
