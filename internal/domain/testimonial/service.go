package testimonial

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateTestimonialRequest) (*Testimonial, error) {
	t := &Testimonial{Name: req.Name, Message: req.Message}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]Testimonial, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTestimonialRequest) (*Testimonial, error) {
	fields := make(map[string]any, 2)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Message != nil {
		fields["message"] = *req.Message
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
