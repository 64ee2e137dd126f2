package testimonial

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// BreakerConfig configures the circuit breaker around the store.
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
	// OnStateChange is called after every transition, e.g. to export metrics.
	OnStateChange func(name string, from, to gobreaker.State)
}

// DefaultBreakerConfig returns the default breaker configuration.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		Name:             "testimonials",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

type breakerRepository struct {
	next Repository
	cb   *gobreaker.CircuitBreaker[[]*Testimonial]
}

// NewBreakerRepository wraps next so that repeated store failures trip a
// circuit breaker. While open, calls fail with ErrStoreUnavailable without
// reaching the store. Failures are never retried.
func NewBreakerRepository(next Repository, cfg *BreakerConfig, logger *zap.Logger) Repository {
	if cfg == nil {
		cfg = DefaultBreakerConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Caller cancellation says nothing about store health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, from, to)
			}
		},
	}

	return &breakerRepository{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[[]*Testimonial](settings),
	}
}

func (r *breakerRepository) ListActive(ctx context.Context) ([]*Testimonial, error) {
	testimonials, err := r.cb.Execute(func() ([]*Testimonial, error) {
		return r.next.ListActive(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return testimonials, err
}
