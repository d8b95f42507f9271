package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/baechuer/blog-api/internal/application/blog"
	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/logger"
	"github.com/baechuer/blog-api/internal/transport/http/dto"
	"github.com/baechuer/blog-api/internal/transport/http/middleware"
	"github.com/baechuer/blog-api/internal/transport/http/response"
	"github.com/baechuer/blog-api/internal/transport/http/validate"
)

type BlogHandler struct {
	svc    *blog.Service
	writer *response.Writer
}

func NewBlogHandler(svc *blog.Service, writer *response.Writer) *BlogHandler {
	return &BlogHandler{svc: svc, writer: writer}
}

// identity pulls the authenticated caller out of the context. The auth
// middleware guarantees both values on protected routes.
func identity(r *http.Request) blog.Identity {
	uid, _ := middleware.UserIDFromContext(r.Context())
	role, _ := middleware.RoleFromContext(r.Context())
	return blog.Identity{UserID: uid, Role: role}
}

// blogID validates the {id} path parameter before it reaches the store.
func blogID(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", domain.ErrInvalidID("id")
	}
	return raw, nil
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlogRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	b, err := h.svc.Create(r.Context(), identity(r), req.Title, req.Content)
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("blog_id", b.ID).
		Str("author_id", b.AuthorID).
		Msg("blog_created")

	h.writer.Created(w, "blog created successfully", dto.NewBlogView(b))
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}
	h.writer.OK(w, "blog retrieved successfully", dto.NewBlogView(b))
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	var req dto.UpdateBlogRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	b, err := h.svc.Update(r.Context(), identity(r), id, domain.BlogPatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}
	h.writer.OK(w, "blog updated successfully", dto.NewBlogView(b))
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), identity(r), id); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("blog_id", id).
		Msg("blog_deleted")

	h.writer.OK(w, "blog deleted successfully", nil)
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	blogs, err := h.svc.List(r.Context(), blog.ListOptions{
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		AuthorID:  q.Get("filter"),
	})
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}
	h.writer.OK(w, "blogs retrieved successfully", dto.NewBlogViews(blogs))
}
