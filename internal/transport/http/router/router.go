package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/blog-api/internal/transport/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BlogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	BlockUser(w http.ResponseWriter, r *http.Request)
	DeleteBlog(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Auth   AuthHandler
	Blog   BlogHandler
	Admin  AdminHandler
	Health HealthHandler

	Writer *response.Writer

	AuthMW  func(http.Handler) http.Handler
	UserMW  func(http.Handler) http.Handler
	AdminMW func(http.Handler) http.Handler

	// Optional throttling on the credential endpoints.
	LoginLimitMW    func(http.Handler) http.Handler
	RegisterLimitMW func(http.Handler) http.Handler

	// Applied to every request, outermost first.
	Global []func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Blog == nil {
		return nil, fmt.Errorf("nil Blog handler")
	}
	if deps.Admin == nil {
		return nil, fmt.Errorf("nil Admin handler")
	}
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Writer == nil {
		return nil, fmt.Errorf("nil response writer")
	}
	if deps.AuthMW == nil || deps.UserMW == nil || deps.AdminMW == nil {
		return nil, fmt.Errorf("nil middleware")
	}

	passthrough := func(next http.Handler) http.Handler { return next }
	if deps.LoginLimitMW == nil {
		deps.LoginLimitMW = passthrough
	}
	if deps.RegisterLimitMW == nil {
		deps.RegisterLimitMW = passthrough
	}

	r := chi.NewRouter()
	for _, mw := range deps.Global {
		r.Use(mw)
	}

	welcome := func(w http.ResponseWriter, req *http.Request) {
		deps.Writer.OK(w, "Welcome to the blog API", nil)
	}
	r.Get("/", welcome)
	r.Get("/healthz", deps.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", welcome)

		r.Route("/auth", func(r chi.Router) {
			r.With(deps.RegisterLimitMW).Post("/register", deps.Auth.Register)
			r.With(deps.LoginLimitMW).Post("/login", deps.Auth.Login)
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", deps.Blog.List)
			r.Get("/{id}", deps.Blog.Get)

			r.Group(func(r chi.Router) {
				r.Use(deps.AuthMW)
				r.Use(deps.UserMW)
				r.Post("/", deps.Blog.Create)
				r.Patch("/{id}", deps.Blog.Update)
				r.Delete("/{id}", deps.Blog.Delete)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Use(deps.AdminMW)

			r.Patch("/users/{userId}/block", deps.Admin.BlockUser)
			r.Delete("/blogs/{id}", deps.Admin.DeleteBlog)
		})
	})

	r.NotFound(deps.Writer.NotFound)
	r.MethodNotAllowed(deps.Writer.NotFound)

	return r, nil
}
