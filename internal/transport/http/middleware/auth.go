package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/baechuer/blog-api/internal/application/auth"
	"github.com/baechuer/blog-api/internal/domain"
)

type TokenVerifier interface {
	VerifyAccessToken(token string) (auth.TokenClaims, error)
}

// UserLoader is the minimal read the middleware needs: every protected
// request re-checks the account so revoked (blocked) users lose access
// even while their token is still within its lifetime.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <access_token>, loads the account,
// rejects blocked users, and injects identity into the request context.
// The role stored on the account wins over the role claim in the token.
func Auth(verifier TokenVerifier, users UserLoader, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			claims, err := verifier.VerifyAccessToken(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			// Structural checks: a well-formed signature over garbage claims
			// is still unauthorized.
			if _, err := uuid.Parse(claims.UserID); err != nil {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if u.Blocked {
				writeErr(w, r, domain.ErrAccountBlocked())
				return
			}

			ctx := WithUser(r.Context(), u.ID, u.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
