package memory

import (
	"context"
	"log"

	"github.com/baechuer/blog-api/internal/application/auth"
)

// NoopPublisher stands in for the broker in dev and tests.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishUserRegistered(ctx context.Context, evt auth.UserRegisteredEvent) error {
	log.Printf("[noop-pub] user registered: user_id=%s email=%s", evt.UserID, evt.Email)
	return nil
}

func (p *NoopPublisher) PublishUserBlocked(ctx context.Context, evt auth.UserBlockedEvent) error {
	log.Printf("[noop-pub] user blocked: user_id=%s actor_id=%s", evt.UserID, evt.ActorID)
	return nil
}
