package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/baechuer/blog-api/internal/application/admin"
	"github.com/baechuer/blog-api/internal/application/blog"
	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/logger"
	"github.com/baechuer/blog-api/internal/transport/http/dto"
	"github.com/baechuer/blog-api/internal/transport/http/middleware"
	"github.com/baechuer/blog-api/internal/transport/http/response"
)

type AdminHandler struct {
	svc    *admin.Service
	blogs  *blog.Service
	writer *response.Writer
}

func NewAdminHandler(svc *admin.Service, blogs *blog.Service, writer *response.Writer) *AdminHandler {
	return &AdminHandler{svc: svc, blogs: blogs, writer: writer}
}

func (h *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "userId")
	if _, err := uuid.Parse(raw); err != nil {
		h.writer.WriteError(w, r, domain.ErrInvalidID("userId"))
		return
	}

	actorID, _ := middleware.UserIDFromContext(r.Context())

	u, err := h.svc.BlockUser(r.Context(), actorID, raw)
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Warn().
		Str("user_id", u.ID).
		Str("actor_id", actorID).
		Msg("user_blocked")

	h.writer.OK(w, "user blocked successfully", dto.NewUserView(u))
}

func (h *AdminHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	if _, err := uuid.Parse(raw); err != nil {
		h.writer.WriteError(w, r, domain.ErrInvalidID("id"))
		return
	}

	if err := h.blogs.AdminDelete(r.Context(), raw); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	actorID, _ := middleware.UserIDFromContext(r.Context())
	logger.WithCtx(r.Context()).Warn().
		Str("blog_id", raw).
		Str("actor_id", actorID).
		Msg("blog_deleted_by_admin")

	h.writer.OK(w, "blog deleted successfully", nil)
}
