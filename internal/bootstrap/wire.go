package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/baechuer/blog-api/internal/application/admin"
	"github.com/baechuer/blog-api/internal/application/auth"
	"github.com/baechuer/blog-api/internal/application/blog"
	"github.com/baechuer/blog-api/internal/config"
	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/infrastructure/db/postgres"
	"github.com/baechuer/blog-api/internal/infrastructure/memory"
	rabbitmq_pub "github.com/baechuer/blog-api/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/blog-api/internal/infrastructure/redis"
	"github.com/baechuer/blog-api/internal/infrastructure/security"
	"github.com/baechuer/blog-api/internal/logger"
	http_handlers "github.com/baechuer/blog-api/internal/transport/http/handlers"
	"github.com/baechuer/blog-api/internal/transport/http/middleware"
	"github.com/baechuer/blog-api/internal/transport/http/response"
	"github.com/baechuer/blog-api/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (DBCloser, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(rabbitURL string) (Publisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

type Publisher interface{}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	// 2) repos
	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	userRepo := postgres.NewUserRepo(sqlDB)
	blogRepo := postgres.NewBlogRepo(sqlDB)

	// 3) redis (best-effort, rate limiting only)
	var redisCli RedisClient
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; rate limiting disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) publisher
	var pub auth.EventPublisher
	if deps.NewPublisher != nil && cfg.RabbitURL != "" {
		p, err := deps.NewPublisher(cfg.RabbitURL)
		if err != nil {
			if cfg.IsDev() {
				logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
				pub = memory.NewNoopPublisher()
			} else {
				runCleanup(cleanupFns)
				return nil, nil, err
			}
		} else {
			ep, ok := p.(auth.EventPublisher)
			if !ok {
				runCleanup(cleanupFns)
				return nil, nil, errors.New("bootstrap: publisher does not implement auth.EventPublisher")
			}
			pub = ep
			if c, ok := p.(interface{ Close() error }); ok {
				cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			}
		}
	} else {
		pub = memory.NewNoopPublisher()
	}

	// 5) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// seed (dev only)
	if cfg.IsDev() {
		postgres.SeedUsers(context.Background(), userRepo, hasher)
	}

	// 6) services
	authSvc := auth.NewService(userRepo, hasher, signer, pub, auth.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})
	authSvc = authSvc.WithAudit(func(action string, fields map[string]string) {
		evt := logger.Logger.Info().
			Bool("audit", true).
			Str("action", action)
		for k, v := range fields {
			evt = evt.Str(k, v)
		}
		evt.Msg("audit")
	})

	blogSvc := blog.NewService(blogRepo)
	adminSvc := admin.NewService(userRepo, pub)

	// 7) handlers + middleware
	writer := response.NewWriter(cfg.IsDev())

	authH := http_handlers.NewAuthHandler(authSvc, writer)
	blogH := http_handlers.NewBlogHandler(blogSvc, writer)
	adminH := http_handlers.NewAdminHandler(adminSvc, blogSvc, writer)
	healthH := http_handlers.NewHealthHandler(sqlDB, writer)

	authMW := middleware.Auth(signer, userRepo, writer.WriteError)
	userMW := middleware.RequireAtLeast(string(domain.RoleUser), writer.WriteError)
	adminMW := middleware.RequireAtLeast(string(domain.RoleAdmin), writer.WriteError)

	// rate limit (fail-open)
	var fwLimiter *redis.FixedWindowLimiter
	if rc, ok := redisCli.(*redis.Client); ok {
		fwLimiter = redis.NewFixedWindowLimiter(rc)
	} else if redisCli != nil {
		logger.Logger.Warn().Msg("redis client does not support rate limiting; rate limiting disabled")
	}

	rl := func(key string, limit int, window time.Duration) func(http.Handler) http.Handler {
		if fwLimiter == nil {
			return nil
		}
		return middleware.RateLimitFixedWindow(
			fwLimiter,
			middleware.FixedWindowConfig{
				RouteKey: key,
				Limit:    limit,
				Window:   window,
			},
			writer.WriteError,
		)
	}

	// 8) router
	mux, err := deps.NewRouter(router.Deps{
		Auth:   authH,
		Blog:   blogH,
		Admin:  adminH,
		Health: healthH,
		Writer: writer,

		AuthMW:  authMW,
		UserMW:  userMW,
		AdminMW: adminMW,

		LoginLimitMW:    rl("auth.login", 5, time.Minute),
		RegisterLimitMW: rl("auth.register", 3, time.Minute),

		Global: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.AccessLog(logger.Logger),
			middleware.CORS(cfg.CORSAllowedOrigins),
		},
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 9) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return config.NewDB(addr, debug)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(url string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
