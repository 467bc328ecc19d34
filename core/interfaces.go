package core

import (
	"context"
	"time"
)

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORT (Database operations)
// ============================================

// CredentialStore defines the durable account table keyed by unique email.
//
// Uniqueness is enforced by the store, not the caller: CreateAccount must
// rely on the store's native unique constraint so that a race between two
// inserts of the same email resolves to exactly one success. There is no
// check-then-insert anywhere in this library.
type CredentialStore interface {
	// CreateAccount inserts the account and fills in the store-assigned
	// ID and CreatedAt. A colliding email returns ErrDuplicateEmail and
	// mutates nothing.
	CreateAccount(ctx context.Context, a *Account) error

	// GetAccountByEmail returns ErrAccountNotFound when no row matches.
	// Emails are matched byte-for-byte (no normalization).
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)

	// Ping reports store connectivity for health probes.
	Ping(ctx context.Context) error
}

// ============================================
// CRYPTO PORTS
// ============================================

// PasswordHandler provides one-way salted hashing and verification.
type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TokenIssuer builds and verifies signed time-bounded bearer tokens.
type TokenIssuer interface {
	// Issue signs a token over the claims with expiry = now + ttl.
	Issue(claims Claims, ttl time.Duration) (string, error)

	// Verify returns the claims if the signature verifies under the
	// current secret and the expiry is in the future. Fails with
	// ErrTokenExpired or ErrInvalidToken.
	Verify(token string) (*Claims, error)
}

// ============================================
// AUTH HANDLER (for HTTP adapters)
// ============================================

// AuthProvider provides authentication operations for HTTP adapters
type AuthProvider interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	VerifyToken(token string) (*Claims, error)
	Health(ctx context.Context) error
}

// ============================================
// HTTP PORT
// ============================================

type HTTPAdapter interface {
	RegisterRoutes(l *Lawang) error
}
