package postgres

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/baechuer/blog-api/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers creates the development accounts. Duplicate-email failures are
// ignored so restarts are safe. Never call this outside dev.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedUser struct {
		Name  string
		Email string
		Role  string
		Pass  string
	}

	seeds := []seedUser{
		{Name: "Admin", Email: "admin@example.com", Role: "admin", Pass: "AdminPassword123!"},
		{Name: "Demo User", Email: "user@example.com", Role: "user", Pass: "UserPassword123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Printf("[seed] hash failed (%s): %v", s.Email, err)
			continue
		}

		u := domain.User{
			ID:           uuid.NewString(),
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
			Blocked:      false,
		}

		if _, err := repo.Create(ctx, u); err != nil {
			// ignore duplicates (restart safe)
			continue
		}
	}

	log.Println("[seed] postgres users seeded")
}
