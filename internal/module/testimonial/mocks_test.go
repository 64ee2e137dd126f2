package testimonial

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListActive(ctx context.Context) ([]*Testimonial, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestimonial(author string, active bool) *Testimonial {
	return &Testimonial{
		ID:         uuid.New(),
		AuthorName: author,
		Quote:      "Great product from " + author,
		Rating:     5,
		IsActive:   active,
	}
}
