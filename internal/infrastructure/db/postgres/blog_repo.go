package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/query"
)

// blogColumns whitelists the columns filter and sort descriptors may
// reference. Anything else is dropped, never interpolated into SQL.
var blogColumns = map[string]bool{
	"title":      true,
	"content":    true,
	"author_id":  true,
	"created_at": true,
	"updated_at": true,
}

type BlogRepo struct {
	db *sql.DB
}

func NewBlogRepo(db *sql.DB) *BlogRepo {
	return &BlogRepo{db: db}
}

func (r *BlogRepo) scanBlogRow(row *sql.Row) (blogRow, error) {
	var br blogRow
	err := row.Scan(
		&br.ID,
		&br.Title,
		&br.Content,
		&br.AuthorID,
		&br.Published,
		&br.CreatedAt,
		&br.UpdatedAt,
	)
	return br, err
}

func toDomainBlog(br blogRow) domain.Blog {
	return domain.Blog{
		ID:        br.ID,
		Title:     br.Title,
		Content:   br.Content,
		AuthorID:  br.AuthorID,
		Published: br.Published,
		CreatedAt: br.CreatedAt,
		UpdatedAt: br.UpdatedAt,
	}
}

// ---------- blog.BlogRepo ----------

func (r *BlogRepo) Create(ctx context.Context, b domain.Blog) (domain.Blog, error) {
	if b.ID == "" {
		return domain.Blog{}, domain.ErrMissingField("id")
	}
	if b.AuthorID == "" {
		return domain.Blog{}, domain.ErrMissingField("author_id")
	}

	const q = `
INSERT INTO blogs (id, title, content, author_id, published)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, title, content, author_id, published, created_at, updated_at;
`
	br, err := r.scanBlogRow(r.db.QueryRowContext(ctx, q,
		b.ID, b.Title, b.Content, b.AuthorID, b.Published,
	))
	if err != nil {
		return domain.Blog{}, domain.ErrDBUnavailable(err)
	}
	return toDomainBlog(br), nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Blog{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT id, title, content, author_id, published, created_at, updated_at
FROM blogs
WHERE id = $1
LIMIT 1;
`
	br, err := r.scanBlogRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return domain.Blog{}, domain.ErrBlogNotFound()
		}
		return domain.Blog{}, domain.ErrDBUnavailable(err)
	}
	return toDomainBlog(br), nil
}

func (r *BlogRepo) Update(ctx context.Context, id string, patch domain.BlogPatch) (domain.Blog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Blog{}, domain.ErrMissingField("id")
	}

	// COALESCE keeps the stored value for absent patch fields.
	const q = `
UPDATE blogs
SET title      = COALESCE($2, title),
    content    = COALESCE($3, content),
    updated_at = NOW()
WHERE id = $1
RETURNING id, title, content, author_id, published, created_at, updated_at;
`
	br, err := r.scanBlogRow(r.db.QueryRowContext(ctx, q, id, patch.Title, patch.Content))
	if err != nil {
		if isNoRows(err) {
			return domain.Blog{}, domain.ErrBlogNotFound()
		}
		return domain.Blog{}, domain.ErrDBUnavailable(err)
	}
	return toDomainBlog(br), nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM blogs WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrBlogNotFound()
	}
	return nil
}

func (r *BlogRepo) List(ctx context.Context, filter query.Filter, sort query.Sort) ([]domain.Blog, error) {
	q, args := buildListQuery(filter, sort)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Blog
	for rows.Next() {
		var br blogRow
		if err := rows.Scan(
			&br.ID,
			&br.Title,
			&br.Content,
			&br.AuthorID,
			&br.Published,
			&br.CreatedAt,
			&br.UpdatedAt,
		); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, toDomainBlog(br))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

// buildListQuery renders the store-neutral descriptors into SQL. Values go
// through placeholders; column names only ever come from the whitelist.
func buildListQuery(filter query.Filter, sort query.Sort) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
SELECT id, title, content, author_id, published, created_at, updated_at
FROM blogs`)

	var (
		args    []any
		clauses []string
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if or := renderConditions(filter.Or, arg); len(or) > 0 {
		clauses = append(clauses, "("+strings.Join(or, " OR ")+")")
	}
	clauses = append(clauses, renderConditions(filter.And, arg)...)

	if len(clauses) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}

	if !sort.IsZero() && blogColumns[sort.Field] {
		dir := "ASC"
		if sort.Direction == query.Descending {
			dir = "DESC"
		}
		sb.WriteString("\nORDER BY " + sort.Field + " " + dir)
	} else {
		sb.WriteString("\nORDER BY created_at ASC")
	}
	sb.WriteString(";")

	return sb.String(), args
}

func renderConditions(conds []query.Condition, arg func(any) string) []string {
	var out []string
	for _, c := range conds {
		if !blogColumns[c.Field] {
			continue
		}
		if c.Substring {
			out = append(out, c.Field+" ILIKE "+arg("%"+c.Value+"%"))
		} else {
			out = append(out, c.Field+" = "+arg(c.Value))
		}
	}
	return out
}
