package testimonial

import (
	"context"
	"time"

	"github.com/uniedit/landing/internal/shared/metrics"
	"github.com/uniedit/landing/internal/shared/requestctx"
	"go.uber.org/zap"
)

const opListActive = "list_active_testimonials"

// Service provides testimonial queries.
type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new testimonial service. m may be nil.
func NewService(repo Repository, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// ListActiveTestimonials returns every active testimonial in the order the
// store yields them. On success the slice is never nil.
func (s *Service) ListActiveTestimonials(ctx context.Context) ([]*Testimonial, error) {
	start := time.Now()
	testimonials, err := s.repo.ListActive(ctx)
	if s.metrics != nil {
		s.metrics.RecordDBQuery(opListActive, time.Since(start), err)
	}
	if err != nil {
		s.logger.Error("failed to list active testimonials",
			zap.String("request_id", requestctx.RequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	if testimonials == nil {
		testimonials = []*Testimonial{}
	}
	return testimonials, nil
}
