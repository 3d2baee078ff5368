package customers

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByDNI(ctx context.Context, dni int64) (Customer, error) {
	return s.repo.FindByDNI(ctx, dni)
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	return s.repo.Create(ctx, Customer{
		DNI:      req.DNI,
		Name:     strings.TrimSpace(req.Name),
		LastName: strings.TrimSpace(req.LastName),
		Email:    strings.TrimSpace(req.Email),
	})
}
