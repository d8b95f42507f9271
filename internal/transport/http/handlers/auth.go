package http_handlers

import (
	"net/http"

	"github.com/baechuer/blog-api/internal/application/auth"
	"github.com/baechuer/blog-api/internal/logger"
	"github.com/baechuer/blog-api/internal/transport/http/dto"
	"github.com/baechuer/blog-api/internal/transport/http/response"
	"github.com/baechuer/blog-api/internal/transport/http/validate"
)

type AuthHandler struct {
	svc    *auth.Service
	writer *response.Writer
}

func NewAuthHandler(svc *auth.Service, writer *response.Writer) *AuthHandler {
	return &AuthHandler{svc: svc, writer: writer}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Str("email", u.Email).
		Msg("user_registered")

	h.writer.Created(w, "user registered successfully", dto.NewUserView(u))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	tok, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writer.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Msg("user_logged_in")

	h.writer.OK(w, "login successful", dto.TokenView{
		Token:     tok.AccessToken,
		TokenType: tok.TokenType,
		ExpiresIn: tok.ExpiresIn,
	})
}
