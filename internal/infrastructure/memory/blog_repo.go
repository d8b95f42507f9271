package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/query"
)

type BlogRepo struct {
	mu    sync.RWMutex
	blogs map[string]domain.Blog
	seq   int64 // insertion order for the default listing
	order map[string]int64
}

func NewBlogRepo() *BlogRepo {
	return &BlogRepo{
		blogs: make(map[string]domain.Blog),
		order: make(map[string]int64),
	}
}

func (r *BlogRepo) Create(ctx context.Context, b domain.Blog) (domain.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	r.seq++
	r.blogs[b.ID] = b
	r.order[b.ID] = r.seq
	return b, nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blogs[id]
	if !ok {
		return domain.Blog{}, domain.ErrBlogNotFound()
	}
	return b, nil
}

func (r *BlogRepo) Update(ctx context.Context, id string, patch domain.BlogPatch) (domain.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.blogs[id]
	if !ok {
		return domain.Blog{}, domain.ErrBlogNotFound()
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Content != nil {
		b.Content = *patch.Content
	}
	b.UpdatedAt = time.Now()
	r.blogs[id] = b
	return b, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return domain.ErrBlogNotFound()
	}
	delete(r.blogs, id)
	delete(r.order, id)
	return nil
}

func (r *BlogRepo) List(ctx context.Context, filter query.Filter, s query.Sort) ([]domain.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Blog
	for _, b := range r.blogs {
		if filter.Matches(blogField(b)) {
			out = append(out, b)
		}
	}

	if s.IsZero() {
		sort.Slice(out, func(i, j int) bool {
			return r.order[out[i].ID] < r.order[out[j].ID]
		})
		return out, nil
	}

	sort.Slice(out, func(i, j int) bool {
		less := blogLess(out[i], out[j], s.Field)
		if s.Direction == query.Descending {
			return !less
		}
		return less
	})
	return out, nil
}

// blogLess orders two blogs by a field. Time fields compare as times; their
// RFC3339Nano renderings do not sort lexically across fractional seconds.
func blogLess(a, b domain.Blog, field string) bool {
	switch field {
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt)
	default:
		return blogField(a)(field) < blogField(b)(field)
	}
}

func blogField(b domain.Blog) func(string) string {
	return func(field string) string {
		switch field {
		case "title":
			return b.Title
		case "content":
			return b.Content
		case "author_id":
			return b.AuthorID
		case "created_at":
			return b.CreatedAt.Format(time.RFC3339Nano)
		case "updated_at":
			return b.UpdatedAt.Format(time.RFC3339Nano)
		default:
			return ""
		}
	}
}
