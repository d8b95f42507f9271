package auth

import (
	"context"
	"strings"

	"github.com/baechuer/blog-api/internal/domain"
)

// Login authenticates a user and issues an access token whose role claim
// mirrors the stored role. Blocked accounts are rejected before the password
// is even checked, so a correct password changes nothing for them.
func (s *Service) Login(ctx context.Context, email, password string) (AuthToken, domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" || password == "" {
		return AuthToken{}, domain.User{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthToken{}, domain.User{}, err
	}

	if u.Blocked {
		return AuthToken{}, domain.User{}, domain.ErrAccountBlocked()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return AuthToken{}, domain.User{}, domain.ErrInvalidCredentials()
	}

	access, err := s.signer.SignAccessToken(u.ID, u.Role, s.accessTTL)
	if err != nil {
		return AuthToken{}, domain.User{}, domain.ErrTokenSignFailed(err)
	}

	s.audit("auth.login", map[string]string{"user_id": u.ID})

	return AuthToken{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, u, nil
}

// GetUserByID loads a single user. Used by the auth middleware for the
// per-request block check.
func (s *Service) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}
