package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lborres/lawang/core"
)

// dummyPasswordHash is verified against when no account matches the email,
// so that login takes the same time whether or not the account exists.
// It is a fake hash that will never match any password.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type AuthService struct {
	store     core.CredentialStore
	passwords core.PasswordHandler
	tokens    core.TokenIssuer
	tokenTTL  time.Duration
}

// Ensure AuthService implements AuthProvider
var _ core.AuthProvider = (*AuthService)(nil)

func NewAuthService(store core.CredentialStore, passwords core.PasswordHandler, tokens core.TokenIssuer, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		passwords: passwords,
		tokens:    tokens,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new account and issues its first token.
//
// There is no existence pre-check: the store's unique constraint is the
// sole duplicate signal, so two concurrent registrations of the same
// email resolve to exactly one success.
func (s *AuthService) Register(ctx context.Context, input core.RegisterInput) (*core.AuthResult, error) {
	// Step 1: Validate before touching the store
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash the password
	hashedPassword, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Insert; a colliding email surfaces as ErrDuplicateEmail
	account := &core.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, core.ErrDuplicateEmail) {
			return nil, core.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Step 4: Issue a token with the new account's claims
	token, err := s.issueToken(account)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.AuthResult{
		Token:    token,
		UserID:   account.ID,
		Username: account.Username,
		Email:    account.Email,
	}, nil
}

// Login verifies credentials and issues a fresh token.
//
// An unknown email and a wrong password produce the same error, and both
// paths run a full hash verification, so responses don't leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, input core.LoginInput) (*core.AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find the account by email
	account, err := s.store.GetAccountByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, core.ErrAccountNotFound) {
			// Burn a verification against the dummy hash to keep timing uniform
			_, _ = s.passwords.Verify(input.Password, dummyPasswordHash)
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	// Step 3: Verify the password. A malformed stored hash verifies false
	// rather than surfacing as a server error.
	valid, err := s.passwords.Verify(input.Password, account.PasswordHash)
	if err != nil || !valid {
		return nil, core.ErrInvalidCredentials
	}

	// Step 4: Issue a fresh token
	token, err := s.issueToken(account)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.AuthResult{
		Token:    token,
		UserID:   account.ID,
		Username: account.Username,
		Email:    account.Email,
	}, nil
}

// VerifyToken validates a bearer token and returns its claims. Consumed
// by request-authorization middleware, not by Register/Login themselves.
func (s *AuthService) VerifyToken(token string) (*core.Claims, error) {
	if token == "" {
		return nil, core.ErrInvalidToken
	}
	return s.tokens.Verify(token)
}

// Health probes store connectivity.
func (s *AuthService) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *AuthService) issueToken(account *core.Account) (string, error) {
	return s.tokens.Issue(core.Claims{
		UserID:   account.ID,
		Username: account.Username,
		Email:    account.Email,
	}, s.tokenTTL)
}
