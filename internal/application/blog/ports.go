package blog

import (
	"context"

	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/query"
)

/*
BlogRepo
--------
Persistence port for blogs. List takes the store-neutral filter/sort
descriptors so the SQL and in-memory implementations stay interchangeable.
*/
type BlogRepo interface {
	Create(ctx context.Context, b domain.Blog) (domain.Blog, error)
	GetByID(ctx context.Context, id string) (domain.Blog, error)
	Update(ctx context.Context, id string, patch domain.BlogPatch) (domain.Blog, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter query.Filter, sort query.Sort) ([]domain.Blog, error)
}
