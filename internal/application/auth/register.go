package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/baechuer/blog-api/internal/domain"
)

// Register creates a new user account with the default user role. The
// password is hashed before it ever reaches the repository.
func (s *Service) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return domain.User{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	now := time.Now()
	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(domain.RoleUser),
		Blocked:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	// Best-effort: a broker outage must not fail registration.
	if s.pub != nil {
		_ = s.pub.PublishUserRegistered(ctx, UserRegisteredEvent{
			UserID: created.ID,
			Email:  created.Email,
		})
	}

	s.audit("auth.register", map[string]string{"user_id": created.ID})
	return created, nil
}
