package services

import (
	"context"
	"sync"
	"time"

	"github.com/lborres/lawang/core"
)

// FakeCredentialStore is a test-only fake implementing core.CredentialStore.
// It stores accounts in a map keyed by email, enforces email uniqueness
// under its own lock the way the real store's unique index does, and
// exposes error fields for behavior injection.
type FakeCredentialStore struct {
	mu       sync.RWMutex
	accounts map[string]*core.Account
	nextID   int64

	createErr error
	getErr    error
	pingErr   error

	// CreateCalls counts CreateAccount invocations, so tests can assert
	// that validation failures never reach the store.
	CreateCalls int
}

func NewFakeCredentialStore() *FakeCredentialStore {
	return &FakeCredentialStore{
		accounts: make(map[string]*core.Account),
		nextID:   1,
	}
}

func (f *FakeCredentialStore) CreateAccount(_ context.Context, a *core.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CreateCalls++

	if f.createErr != nil {
		return f.createErr
	}

	if _, exists := f.accounts[a.Email]; exists {
		return core.ErrDuplicateEmail
	}

	a.ID = f.nextID
	a.CreatedAt = time.Now()
	f.nextID++

	stored := *a
	f.accounts[a.Email] = &stored
	return nil
}

func (f *FakeCredentialStore) GetAccountByEmail(_ context.Context, email string) (*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}

	a, ok := f.accounts[email]
	if !ok {
		return nil, core.ErrAccountNotFound
	}

	found := *a
	return &found, nil
}

func (f *FakeCredentialStore) Ping(_ context.Context) error {
	return f.pingErr
}

// Count returns the number of stored accounts.
func (f *FakeCredentialStore) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.accounts)
}
