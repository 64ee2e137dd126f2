package testimonial

// ListResponse is the body of the testimonial listing endpoint.
type ListResponse struct {
	Testimonials []*Testimonial `json:"testimonials"`
}
