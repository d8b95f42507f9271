package blog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/query"
)

// searchableFields are the blog columns the free-text search matches against.
var searchableFields = []string{"title", "content"}

type Service struct {
	blogs BlogRepo
}

func NewService(blogs BlogRepo) *Service {
	return &Service{blogs: blogs}
}

// Identity is the authenticated caller, as established by the auth middleware.
// Authorship is always taken from here, never from the request body.
type Identity struct {
	UserID string
	Role   string
}

func (id Identity) isAdmin() bool { return id.Role == string(domain.RoleAdmin) }

// ListOptions mirrors the public listing query parameters.
type ListOptions struct {
	Search    string
	SortBy    string
	SortOrder string
	AuthorID  string
}

// Create stores a new blog authored by the caller. Blogs are published
// immediately.
func (s *Service) Create(ctx context.Context, actor Identity, title, content string) (domain.Blog, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Blog{}, domain.ErrMissingField("title")
	}
	if strings.TrimSpace(content) == "" {
		return domain.Blog{}, domain.ErrMissingField("content")
	}

	b := domain.Blog{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		AuthorID:  actor.UserID,
		Published: true,
	}
	return s.blogs.Create(ctx, b)
}

// Get returns a single blog by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Blog, error) {
	return s.blogs.GetByID(ctx, id)
}

// Update applies a partial update. Only the blog's author or an admin may
// update a blog.
func (s *Service) Update(ctx context.Context, actor Identity, id string, patch domain.BlogPatch) (domain.Blog, error) {
	existing, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return domain.Blog{}, err
	}
	if existing.AuthorID != actor.UserID && !actor.isAdmin() {
		return domain.Blog{}, domain.ErrNotBlogAuthor()
	}
	return s.blogs.Update(ctx, id, patch)
}

// Delete removes a blog. Same ownership rule as Update.
func (s *Service) Delete(ctx context.Context, actor Identity, id string) error {
	existing, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != actor.UserID && !actor.isAdmin() {
		return domain.ErrNotBlogAuthor()
	}
	return s.blogs.Delete(ctx, id)
}

// AdminDelete removes any blog regardless of authorship. Role enforcement
// happens in the transport layer.
func (s *Service) AdminDelete(ctx context.Context, id string) error {
	if _, err := s.blogs.GetByID(ctx, id); err != nil {
		return err
	}
	return s.blogs.Delete(ctx, id)
}

// List returns blogs matching the options. An empty search matches all,
// an empty author filter applies no author restriction, and the default
// order is ascending by the requested field.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]domain.Blog, error) {
	filter := query.Combine(
		query.BuildSearch(opts.Search, searchableFields...),
		query.BuildEquality("author_id", opts.AuthorID),
	)
	sort := query.BuildSort(opts.SortBy, opts.SortOrder)
	return s.blogs.List(ctx, filter, sort)
}
