package testimonial

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository is the read access the service needs from the testimonial store.
type Repository interface {
	// ListActive returns every active testimonial in store iteration order.
	ListActive(ctx context.Context) ([]*Testimonial, error)
}

// repository implements Repository using GORM.
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new testimonial repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListActive deliberately applies no ORDER BY.
func (r *repository) ListActive(ctx context.Context) ([]*Testimonial, error) {
	var testimonials []*Testimonial
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&testimonials).Error
	if err != nil {
		return nil, fmt.Errorf("query active testimonials: %w", err)
	}
	return testimonials, nil
}
