package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uniedit/landing/internal/module/invitation"
	"github.com/uniedit/landing/internal/module/testimonial"
	"github.com/uniedit/landing/internal/shared/cache"
	"github.com/uniedit/landing/internal/shared/config"
	"github.com/uniedit/landing/internal/shared/database"
	"github.com/uniedit/landing/internal/shared/logger"
	"github.com/uniedit/landing/internal/shared/metrics"
	"github.com/uniedit/landing/internal/shared/middleware"
)

// ===== Infrastructure Providers =====

// InfraSet provides infrastructure dependencies.
var InfraSet = wire.NewSet(
	ProvideLogger,
	ProvideZapLogger,
	ProvideRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	ProvideMetrics,
	ProvideDatabase,
	ProvideRedisClient,
	ProvideRateLimiter,
)

// ModuleSet provides the HTTP modules.
var ModuleSet = wire.NewSet(
	ProvideTestimonialRepository,
	testimonial.NewService,
	testimonial.NewHandler,
	invitation.NewHandler,
)

// AppSet is the full provider graph.
var AppSet = wire.NewSet(InfraSet, ModuleSet)

// ProvideLogger creates the HTTP-layer logger.
func ProvideLogger(cfg *config.Config) *logger.Logger {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// ProvideZapLogger creates the zap logger used by module services.
func ProvideZapLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	zapLog, err := logger.NewZapLogger(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, nil, err
	}
	return zapLog, func() { _ = zapLog.Sync() }, nil
}

// ProvideRegistry creates the Prometheus registry served on /metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a metrics instance.
func ProvideMetrics(cfg *config.Config, reg prometheus.Registerer) *metrics.Metrics {
	return metrics.New(cfg.Metrics.Namespace, reg)
}

// ProvideDatabase creates a database connection and optionally migrates the schema.
func ProvideDatabase(cfg *config.Config, zapLog *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, &testimonial.Testimonial{}); err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
	}

	cleanup := func() {
		if err := database.Close(db); err != nil {
			zapLog.Warn("failed to close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// ProvideRedisClient creates a Redis client. Redis is optional: it returns nil
// when no address is configured or the server cannot be reached.
func ProvideRedisClient(cfg *config.Config, zapLog *zap.Logger) (*goredis.Client, func()) {
	if cfg.Redis.Address == "" {
		return nil, func() {}
	}
	client, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		zapLog.Warn("Redis connection failed, continuing without rate limiting", zap.Error(err))
		return nil, func() {}
	}
	return client, func() { _ = cache.Close(client) }
}

// ProvideRateLimiter creates a rate limiter, or nil without Redis.
func ProvideRateLimiter(client *goredis.Client) middleware.Limiter {
	if client == nil {
		return nil
	}
	return cache.NewRateLimiter(client)
}

// ProvideTestimonialRepository creates the testimonial store guarded by a circuit breaker.
func ProvideTestimonialRepository(db *gorm.DB, cfg *config.Config, m *metrics.Metrics, zapLog *zap.Logger) testimonial.Repository {
	breakerCfg := &testimonial.BreakerConfig{
		Name:             "testimonials",
		MaxRequests:      cfg.Breaker.MaxRequests,
		Interval:         cfg.Breaker.Interval,
		Timeout:          cfg.Breaker.Timeout,
		FailureThreshold: cfg.Breaker.FailureThreshold,
		OnStateChange: func(name string, _, to gobreaker.State) {
			m.SetBreakerState(name, float64(to))
		},
	}
	return testimonial.NewBreakerRepository(testimonial.NewRepository(db), breakerCfg, zapLog)
}
