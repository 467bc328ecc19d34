package crypto

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lborres/lawang/core"
)

const testSecret = "test-secret-at-least-32-characters!!"

func testClaims() core.Claims {
	return core.Claims{
		UserID:   42,
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestJWT_IssueAndVerify(t *testing.T) {
	// Arrange
	j := NewJWT([]byte(testSecret))

	// Act
	token, err := j.Issue(testClaims(), 24*time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	claims, err := j.Verify(token)

	// Assert
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" || claims.Email != "alice@example.com" {
		t.Errorf("Verify() claims = %+v, want issued identity", claims)
	}
	if remaining := time.Until(claims.ExpiresAt); remaining < 23*time.Hour || remaining > 24*time.Hour {
		t.Errorf("Verify() expiry %v from now, want ~24h", remaining)
	}
}

func TestJWT_Verify_Expired(t *testing.T) {
	// Arrange: a token that expired the moment it was issued
	j := NewJWT([]byte(testSecret))
	token, err := j.Issue(testClaims(), -time.Second)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	// Act
	_, err = j.Verify(token)

	// Assert
	if !errors.Is(err, core.ErrTokenExpired) {
		t.Fatalf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestJWT_Verify_WrongSecret(t *testing.T) {
	// Arrange
	issuer := NewJWT([]byte(testSecret))
	verifier := NewJWT([]byte("a-completely-different-32-char-key!!"))
	token, err := issuer.Issue(testClaims(), 24*time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	// Act
	_, err = verifier.Verify(token)

	// Assert
	if !errors.Is(err, core.ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWT_Verify_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "definitely-not-a-token"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			j := NewJWT([]byte(testSecret))

			// Act
			_, err := j.Verify(test.token)

			// Assert
			if !errors.Is(err, core.ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestJWT_Verify_TamperedPayload(t *testing.T) {
	// Arrange
	j := NewJWT([]byte(testSecret))
	token, err := j.Issue(testClaims(), 24*time.Hour)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d parts, want 3", len(parts))
	}
	// Swap the payload for a re-encoded one; the signature no longer matches
	tampered := parts[0] + "." + "eyJ1aWQiOjk5OX0" + "." + parts[2]

	// Act
	_, err = j.Verify(tampered)

	// Assert
	if !errors.Is(err, core.ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
	}
}
