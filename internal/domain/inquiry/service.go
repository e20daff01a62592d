package inquiry

import (
	"context"
	"log/slog"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, req SubmitInquiryRequest) (*Inquiry, error) {
	i := &Inquiry{Name: req.Name, Phone: req.Phone, Message: req.Message}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	slog.Info("inquiry received", "id", i.ID)
	return i, nil
}

func (s *Service) List(ctx context.Context) ([]Inquiry, error) {
	return s.repo.List(ctx)
}
