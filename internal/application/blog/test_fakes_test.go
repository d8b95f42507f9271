package blog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/query"
)

// fakeBlogRepo mimics the real repositories closely enough for service
// tests: it assigns ids/timestamps on create and honors filter + sort.
type fakeBlogRepo struct {
	mu    sync.Mutex
	blogs map[string]domain.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[string]domain.Blog{}}
}

func (f *fakeBlogRepo) Create(_ context.Context, b domain.Blog) (domain.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	f.blogs[b.ID] = b
	return b, nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id string) (domain.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
	if !ok {
		return domain.Blog{}, domain.ErrBlogNotFound()
	}
	return b, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, id string, patch domain.BlogPatch) (domain.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
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
	f.blogs[id] = b
	return b, nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[id]; !ok {
		return domain.ErrBlogNotFound()
	}
	delete(f.blogs, id)
	return nil
}

func (f *fakeBlogRepo) List(_ context.Context, filter query.Filter, s query.Sort) ([]domain.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Blog
	for _, b := range f.blogs {
		if filter.Matches(fieldGetter(b)) {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		less := fieldGetter(out[i])(s.Field) < fieldGetter(out[j])(s.Field)
		if s.Direction == query.Descending {
			return !less
		}
		return less
	})
	return out, nil
}

func fieldGetter(b domain.Blog) func(string) string {
	return func(field string) string {
		switch field {
		case "title":
			return b.Title
		case "content":
			return b.Content
		case "author_id":
			return b.AuthorID
		default:
			return ""
		}
	}
}
