package core

import "errors"

// Authentication Related Errors
var (
	// Account errors
	ErrDuplicateEmail     = errors.New("email already registered")  // 409 Conflict
	ErrAccountNotFound    = errors.New("account not found")         // internal, never sent to clients
	ErrInvalidCredentials = errors.New("invalid email or password") // 401 Unauthorized
)

// Token errors
var (
	ErrMissingAuthHeader = errors.New("missing authorization header") // 401
	ErrInvalidToken      = errors.New("invalid token")                // 401
	ErrTokenExpired      = errors.New("token expired")                // 401
)

// Validation errors (client input)
var (
	ErrUsernameRequired = errors.New("username is required")  // 400
	ErrEmailRequired    = errors.New("email is required")     // 400
	ErrPasswordRequired = errors.New("password is required")  // 400
	ErrPasswordTooShort = errors.New("password is too short") // 400
)

// Config errors (server-side configuration, fatal at startup)
var (
	ErrDBAdapterRequired   = errors.New("database adapter is required")
	ErrHTTPAdapterRequired = errors.New("http adapter is required")
	ErrSecretRequired      = errors.New("secret is required")
	ErrSecretTooShort      = errors.New("secret too short")
)
