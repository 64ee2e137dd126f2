package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/uniedit/landing/cmd/server/docs" // swagger docs
	"github.com/uniedit/landing/internal/module/invitation"
	"github.com/uniedit/landing/internal/module/testimonial"
	"github.com/uniedit/landing/internal/shared/config"
	"github.com/uniedit/landing/internal/shared/database"
	"github.com/uniedit/landing/internal/shared/logger"
	"github.com/uniedit/landing/internal/shared/metrics"
	"github.com/uniedit/landing/internal/shared/middleware"
	"github.com/uniedit/landing/internal/shared/response"
)

const readinessTimeout = 2 * time.Second

// Dependencies holds all injected dependencies.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	ZapLogger   *zap.Logger
	Registry    *prometheus.Registry
	Metrics     *metrics.Metrics
	DB          *gorm.DB
	Redis       *goredis.Client
	RateLimiter middleware.Limiter

	// HTTP Handlers
	TestimonialHandler *testimonial.Handler
	InvitationHandler  *invitation.Handler
}

// App represents the application.
type App struct {
	deps    *Dependencies
	router  *gin.Engine
	cleanup func()
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	deps, cleanup, err := InitializeDependencies(cfg)
	if err != nil {
		return nil, fmt.Errorf("init dependencies: %w", err)
	}
	return newApp(deps, cleanup), nil
}

func newApp(deps *Dependencies, cleanup func()) *App {
	if cleanup == nil {
		cleanup = func() {}
	}
	a := &App{deps: deps, cleanup: cleanup}
	a.router = a.setupRouter()
	a.registerRoutes()
	return a
}

// Router returns the HTTP handler.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Stop releases the database, Redis and logger resources.
func (a *App) Stop() {
	a.cleanup()
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter() *gin.Engine {
	cfg := a.deps.Config
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Apply global middleware
	r.Use(middleware.Recovery(a.deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(a.deps.Logger))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	r.Use(middleware.CORS(corsCfg))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(a.deps.Metrics))
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.deps.Registry, promhttp.HandlerOpts{})))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", a.readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	return r
}

// registerRoutes mounts the public API.
func (a *App) registerRoutes() {
	v1 := a.router.Group("/api/v1")
	if a.deps.Config.RateLimit.Enabled && a.deps.RateLimiter != nil {
		v1.Use(middleware.RateLimit(a.deps.RateLimiter, middleware.RateLimitConfig{
			Limit:  a.deps.Config.RateLimit.Limit,
			Window: a.deps.Config.RateLimit.Window,
		}, a.deps.Logger))
	}

	a.deps.TestimonialHandler.RegisterRoutes(v1)
	a.deps.InvitationHandler.RegisterRoutes(v1)
}

// readiness reports whether the backing stores answer.
func (a *App) readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	log := logger.FromContext(ctx)
	failures := map[string]string{}
	if err := database.Ping(ctx, a.deps.DB); err != nil {
		log.Warn("readiness check failed", "component", "database", logger.Err(err))
		failures["database"] = "unavailable"
	}
	if a.deps.Redis != nil {
		if err := a.deps.Redis.Ping(ctx).Err(); err != nil {
			log.Warn("readiness check failed", "component", "redis", logger.Err(err))
			failures["redis"] = "unavailable"
		}
	}

	if len(failures) > 0 {
		response.ServiceUnavailable(c, failures)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
