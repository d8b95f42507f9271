package admin

import (
	"context"

	"github.com/baechuer/blog-api/internal/application/auth"
	"github.com/baechuer/blog-api/internal/domain"
)

// Service implements the admin-only operations. Role enforcement happens in
// the transport layer; this service still refuses self-blocking and repeat
// blocking regardless of who calls it.
type Service struct {
	users auth.UserRepo
	pub   auth.EventPublisher
}

func NewService(users auth.UserRepo, pub auth.EventPublisher) *Service {
	return &Service{users: users, pub: pub}
}

// BlockUser marks an account as blocked. Blocked users can no longer log in
// and their existing tokens stop working at the middleware's user lookup.
func (s *Service) BlockUser(ctx context.Context, actorID, userID string) (domain.User, error) {
	if actorID == userID {
		return domain.User{}, domain.ErrCannotBlockSelf()
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if u.Blocked {
		return domain.User{}, domain.ErrAlreadyBlocked()
	}

	if err := s.users.BlockUser(ctx, userID); err != nil {
		return domain.User{}, err
	}
	u.Blocked = true

	// Best-effort, same contract as the registration event.
	if s.pub != nil {
		_ = s.pub.PublishUserBlocked(ctx, auth.UserBlockedEvent{
			UserID:  userID,
			ActorID: actorID,
		})
	}
	return u, nil
}
