package auth

import (
	"time"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner
	pub    EventPublisher

	accessTTL time.Duration
	audit     func(action string, fields map[string]string)
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, pub EventPublisher, cfg Config) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		pub:       pub,
		accessTTL: ttl,
		audit:     func(string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// AuthToken is the token output for handlers/DTO mapping.
type AuthToken struct {
	AccessToken string
	TokenType   string // "Bearer"
	ExpiresIn   int64  // seconds
}
