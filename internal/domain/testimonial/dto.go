package testimonial

// CreateTestimonialRequest is stored as given; empty strings are allowed.
type CreateTestimonialRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// UpdateTestimonialRequest leaves absent fields unchanged.
type UpdateTestimonialRequest struct {
	Name    *string `json:"name"`
	Message *string `json:"message"`
}
