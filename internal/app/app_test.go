package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/uniedit/landing/internal/module/invitation"
	"github.com/uniedit/landing/internal/module/testimonial"
	"github.com/uniedit/landing/internal/shared/config"
	"github.com/uniedit/landing/internal/shared/logger"
	"github.com/uniedit/landing/internal/shared/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Address: ":0"},
		Database: config.DatabaseConfig{Port: 5432},
		Log:      config.LogConfig{Level: "info", Format: "json"},
		CORS:     config.CORSConfig{AllowOrigins: []string{"*"}},
		Metrics:  config.MetricsConfig{Enabled: true, Namespace: "test"},
	}
}

func newTestApp(t *testing.T, cfg *config.Config, limiter *stubLimiter) (*App, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.New(cfg.Metrics.Namespace, reg)
	svc := testimonial.NewService(testimonial.NewRepository(db), m, zap.NewNop())

	deps := &Dependencies{
		Config:             cfg,
		Logger:             logger.New(&logger.Config{Level: "error", Format: "json", Output: io.Discard}),
		ZapLogger:          zap.NewNop(),
		Registry:           reg,
		Metrics:            m,
		DB:                 db,
		TestimonialHandler: testimonial.NewHandler(svc),
		InvitationHandler:  invitation.NewHandler(),
	}
	if limiter != nil {
		deps.RateLimiter = limiter
	}

	return newApp(deps, nil), mock
}

func serve(a *App, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestApp_Health(t *testing.T) {
	a, _ := newTestApp(t, testConfig(), nil)

	w := serve(a, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestApp_Ready(t *testing.T) {
	t.Run("ready when database answers", func(t *testing.T) {
		a, mock := newTestApp(t, testConfig(), nil)
		mock.ExpectPing()

		w := serve(a, http.MethodGet, "/ready")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unavailable when database ping fails", func(t *testing.T) {
		a, mock := newTestApp(t, testConfig(), nil)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := serve(a, http.MethodGet, "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":"service unavailable","code":"UNAVAILABLE","details":{"database":"unavailable"}}`, w.Body.String())
	})
}

func TestApp_Routes(t *testing.T) {
	a, mock := newTestApp(t, testConfig(), nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "testimonials" WHERE is_active = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_name", "quote", "rating", "is_active"}))

	w := serve(a, http.MethodGet, "/api/v1/testimonials")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"testimonials":[]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(a, http.MethodGet, "/api/v1/invitations/abc123")
	assert.JSONEq(t, `{"ok":true,"token":"abc123"}`, w.Body.String())

	w = serve(a, http.MethodPost, "/api/v1/invitations/register")
	assert.JSONEq(t, `{"ok":true,"message":"register placeholder"}`, w.Body.String())

	w = serve(a, http.MethodPost, "/api/v1/invitations/claim")
	assert.JSONEq(t, `{"ok":true,"message":"claim placeholder"}`, w.Body.String())

	w = serve(a, http.MethodPost, "/api/v1/invitations/validate")
	assert.JSONEq(t, `{"ok":true,"valid":false}`, w.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_Metrics(t *testing.T) {
	t.Run("exposes request metrics", func(t *testing.T) {
		a, _ := newTestApp(t, testConfig(), nil)

		serve(a, http.MethodGet, "/api/v1/invitations/abc123")
		w := serve(a, http.MethodGet, "/metrics")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `test_http_requests_total{method="GET",path="/api/v1/invitations/:token",status="2xx"} 1`)
	})

	t.Run("disabled metrics hides the endpoint", func(t *testing.T) {
		cfg := testConfig()
		cfg.Metrics.Enabled = false
		a, _ := newTestApp(t, cfg, nil)

		w := serve(a, http.MethodGet, "/metrics")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

type stubLimiter struct {
	allowed int
}

func (s *stubLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	if s.allowed <= 0 {
		return false, nil
	}
	s.allowed--
	return true, nil
}

func (s *stubLimiter) GetRemaining(context.Context, string, int, time.Duration) (int, error) {
	return s.allowed, nil
}

func TestApp_RateLimit(t *testing.T) {
	t.Run("limits the public API when enabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.RateLimit = config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute}
		a, _ := newTestApp(t, cfg, &stubLimiter{allowed: 1})

		assert.Equal(t, http.StatusOK, serve(a, http.MethodPost, "/api/v1/invitations/claim").Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(a, http.MethodPost, "/api/v1/invitations/claim").Code)
		assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/health").Code)
	})

	t.Run("disabled by default", func(t *testing.T) {
		a, _ := newTestApp(t, testConfig(), &stubLimiter{allowed: 0})

		assert.Equal(t, http.StatusOK, serve(a, http.MethodPost, "/api/v1/invitations/claim").Code)
	})
}
