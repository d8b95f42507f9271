package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/baechuer/blog-api/internal/domain"
)

func TestRegister_CreatesUserWithDefaultRole(t *testing.T) {
	t.Parallel()

	svc, users, pub := newTestService()

	u, err := svc.Register(context.Background(), "Alice Smith", "Alice@Example.com ", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.Role != string(domain.RoleUser) {
		t.Fatalf("expected role user, got %q", u.Role)
	}
	if u.Blocked {
		t.Fatalf("new user must not be blocked")
	}
	if u.PasswordHash != "hashed:secret1" {
		t.Fatalf("password was not hashed: %q", u.PasswordHash)
	}

	stored, err := users.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("stored lookup: %v", err)
	}
	if stored.ID != u.ID {
		t.Fatalf("stored id mismatch")
	}

	if len(pub.registered) != 1 || pub.registered[0].UserID != u.ID {
		t.Fatalf("expected one registered event, got %+v", pub.registered)
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()

	if _, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), "Other Alice", "alice@example.com", "secret2")
	if domain.Code(err) != "email_already_exists" {
		t.Fatalf("expected email_already_exists, got %v", err)
	}
}

func TestRegister_PublisherFailureIsIgnored(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewService(users, &fakeHasher{}, &fakeSigner{}, pub, Config{AccessTTL: time.Hour})

	if _, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("register must survive publisher failure: %v", err)
	}
}

func TestLogin_Succeeds(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	u, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	tok, got, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok.AccessToken != "tok|"+u.ID+"|user" {
		t.Fatalf("unexpected token %q", tok.AccessToken)
	}
	if tok.TokenType != "Bearer" || tok.ExpiresIn != 3600 {
		t.Fatalf("unexpected token meta: %+v", tok)
	}
	if got.ID != u.ID {
		t.Fatalf("returned user mismatch")
	}
}

func TestLogin_UnknownEmailNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if domain.Code(err) != "user_not_found" {
		t.Fatalf("expected user_not_found, got %v", err)
	}
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	if _, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "alice@example.com", "nope")
	if domain.Code(err) != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}
}

func TestLogin_BlockedUserRejectedBeforePasswordCheck(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestService()
	u, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := users.BlockUser(context.Background(), u.ID); err != nil {
		t.Fatalf("block: %v", err)
	}

	_, _, err = svc.Login(context.Background(), "alice@example.com", "secret1")
	if domain.Code(err) != "account_blocked" {
		t.Fatalf("expected account_blocked, got %v", err)
	}
}
