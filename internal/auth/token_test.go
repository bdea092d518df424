package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aidosk/ride-hail-api/internal/model"
)

const testSecret = "test-signing-secret"

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken(testSecret, 42, model.RoleDriver, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token string")
	}

	ident, err := VerifyToken(testSecret, tok.Token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if ident.UserID != 42 {
		t.Fatalf("UserID mismatch: got %d want 42", ident.UserID)
	}
	if ident.Role != model.RoleDriver {
		t.Fatalf("Role mismatch: got %q want %q", ident.Role, model.RoleDriver)
	}
}

func TestVerifyToken_ZeroTTLAlreadyExpired(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken(testSecret, 1, model.RoleCustomer, 0)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	_, err = VerifyToken(testSecret, tok.Token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken(testSecret, 1, model.RoleCustomer, -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	_, err = VerifyToken(testSecret, tok.Token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("right-secret", 1, model.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	_, err = VerifyToken("wrong-secret", tok.Token)
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken(testSecret, "not.a.jwt")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestVerifyToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken(testSecret, 7, model.RoleCustomer, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	parts := strings.Split(tok.Token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	// Flip a character in the payload; the signature no longer covers it.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	ident, err := VerifyToken(testSecret, tampered)
	if err == nil {
		t.Fatalf("tampered token verified as %+v", ident)
	}
	if !errors.Is(err, ErrBadSignature) && !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrBadSignature or ErrTokenMalformed, got %v", err)
	}
}

func TestVerifyToken_UnknownRoleRejected(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken(testSecret, 7, model.Role("SUPERUSER"), time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	_, err = VerifyToken(testSecret, tok.Token)
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for unknown role, got %v", err)
	}
}
