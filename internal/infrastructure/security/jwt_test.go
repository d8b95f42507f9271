package security

import (
	"strings"
	"testing"
	"time"

	"github.com/baechuer/blog-api/internal/domain"
)

func TestJWT_SignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret-1", "blog-api")

	tok, err := s.SignAccessToken("u1", "admin", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := s.VerifyAccessToken(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Exp.Before(time.Now()) {
		t.Fatalf("expected future expiry, got %v", claims.Exp)
	}
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTSigner("secret-1", "blog-api").SignAccessToken("u1", "user", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = NewJWTSigner("secret-2", "blog-api").VerifyAccessToken(tok)
	if domain.Code(err) != "token_invalid" {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWT_TamperedTokenRejected(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret-1", "blog-api")
	tok, err := s.SignAccessToken("u1", "user", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parts := strings.Split(tok, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	if _, err := s.VerifyAccessToken(strings.Join(parts, ".")); domain.Code(err) != "token_invalid" {
		t.Fatalf("expected token_invalid for tampered payload, got %v", err)
	}

	if _, err := s.VerifyAccessToken("not-a-jwt"); domain.Code(err) != "token_invalid" {
		t.Fatalf("expected token_invalid for garbage, got %v", err)
	}
}

func TestJWT_ExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret-1", "blog-api")
	tok, err := s.SignAccessToken("u1", "user", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = s.VerifyAccessToken(tok)
	if domain.Code(err) != "token_expired" {
		t.Fatalf("expected token_expired, got %v", err)
	}
}
