package testimonial

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a piece of customer feedback shown on the landing page.
type Testimonial struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorName  string    `json:"author_name" gorm:"not null"`
	AuthorTitle string    `json:"author_title,omitempty"`
	Company     string    `json:"company,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Quote       string    `json:"quote" gorm:"type:text;not null"`
	Rating      int       `json:"rating" gorm:"not null;default:5"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Testimonial) TableName() string {
	return "testimonials"
}
