package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lborres/lawang/core"
)

// JWT issues and verifies HS256-signed bearer tokens carrying identity
// claims. The secret is symmetric and process-wide.
type JWT struct {
	secret []byte
}

// Ensure JWT implements the core port
var _ core.TokenIssuer = (*JWT)(nil)

func NewJWT(secret []byte) *JWT {
	return &JWT{secret: secret}
}

// tokenClaims is the wire shape of the signed payload.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Issue signs a token over the claims with expiry = now + ttl.
func (j *JWT) Issue(claims core.Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	})

	return token.SignedString(j.secret)
}

// Verify parses and validates a token string. Expired tokens fail with
// core.ErrTokenExpired; any other parse or signature failure collapses
// to core.ErrInvalidToken so callers can't distinguish tampering modes.
func (j *JWT) Verify(tokenString string) (*core.Claims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, core.ErrTokenExpired
		}
		return nil, core.ErrInvalidToken
	}

	if !token.Valid {
		return nil, core.ErrInvalidToken
	}

	return &core.Claims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
