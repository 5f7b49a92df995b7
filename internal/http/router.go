package http

import (
	"errors"
	"log/slog"

	"github.com/geocoder89/roster/internal/config"
	"github.com/geocoder89/roster/internal/http/handlers"
	"github.com/geocoder89/roster/internal/http/middlewares"
	"github.com/geocoder89/roster/internal/observability"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// UsersStore is the read side the router wires into handlers and readiness.
type UsersStore interface {
	handlers.UsersReader
	Len() int
}

var errEmptyStore = errors.New("user store is empty")

func NewRouter(log *slog.Logger, users UsersStore, prom *observability.Prom, cfg config.Config) *gin.Engine {
	// tests pin gin to TestMode; leave it alone there
	if cfg.Env != "dev" && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// redirects bypass the middleware chain and would go out without security headers
	r.RedirectTrailingSlash = false

	// middleware; security headers first so recovery and 404s carry them

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.RequestID())
	r.Use(gin.CustomRecovery(recoverJSON(log)))
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RequestLogger(log))
	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	r.NoRoute(func(ctx *gin.Context) {
		handlers.RespondNotFound(ctx, "not found")
	})

	// health
	ready := func() error {
		if users == nil || users.Len() == 0 {
			return errEmptyStore
		}
		return nil
	}

	h := handlers.NewHealthHandler(ready)
	r.GET("/health", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if prom != nil {
		r.GET("/metrics", gin.WrapH(prom.Handler()))
	}

	// Routes
	usersHandler := handlers.NewUsersHandler(users, log)

	api := r.Group("/api")
	{
		api.GET("/users", usersHandler.ListUsers)
		// static segment wins over :id
		api.GET("/users/search", usersHandler.SearchUsers)
		api.GET("/users/:id", usersHandler.GetUserByID)
	}

	return r
}

func recoverJSON(log *slog.Logger) gin.RecoveryFunc {
	return func(ctx *gin.Context, recovered any) {
		log.ErrorContext(ctx.Request.Context(), "panic recovered",
			"panic", recovered,
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
		)
		handlers.AbortInternal(ctx)
	}
}
