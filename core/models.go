package core

import "time"

// Account represents a registered user's persisted identity and credential.
//
// The id and created_at fields are assigned by the store on creation and
// never change. Email is globally unique, compared byte-for-byte: no
// case folding, no whitespace trimming.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// Claims are the identity fields embedded in a bearer token.
type Claims struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthResult is returned to clients on successful registration or login.
// The field names match the wire format of the HTTP surface.
type AuthResult struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterInput contains the data needed to register a new account
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput contains the credentials for authentication
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
