package auth

import (
	"context"
	"time"

	"github.com/baechuer/blog-api/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth flows need, not HOW it's stored.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	BlockUser(ctx context.Context, userID string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Role   string
	Exp    time.Time
}

type TokenSigner interface {
	SignAccessToken(userID string, role string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes account lifecycle events to the broker for downstream consumers
(audit, notifications). Absence of a broker must not break auth flows.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
	PublishUserBlocked(ctx context.Context, evt UserBlockedEvent) error
}

type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type UserBlockedEvent struct {
	UserID  string `json:"user_id"`
	ActorID string `json:"actor_id"`
}
