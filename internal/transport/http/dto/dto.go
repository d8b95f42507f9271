// Package dto holds the request and response shapes of the public API.
// Request DTOs carry validate tags; views never expose password hashes.
package dto

import (
	"time"

	"github.com/baechuer/blog-api/internal/domain"
)

// ---- requests ----

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=5,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateBlogRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=100"`
	Content string `json:"content" validate:"required,min=10"`
}

// UpdateBlogRequest is a partial update; absent fields stay unchanged.
// Present fields only need to be non-empty, the stricter creation bounds
// do not apply to edits.
type UpdateBlogRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=100"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// ---- views ----

type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BlogView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author"`
	Published bool      `json:"isPublished"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TokenView struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Blocked:   u.Blocked,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewBlogView(b domain.Blog) BlogView {
	return BlogView{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		AuthorID:  b.AuthorID,
		Published: b.Published,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func NewBlogViews(blogs []domain.Blog) []BlogView {
	out := make([]BlogView, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, NewBlogView(b))
	}
	return out
}
