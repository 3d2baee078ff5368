package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/botica-real/botica/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Provider, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateProviderRequest) (Provider, error) {
	return s.repo.Create(ctx, Provider{
		RUC:     req.RUC,
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
	})
}

// Resolve looks up a provider by name. Unlike categories and brands, an
// unknown provider is rejected: providers carry a RUC and contact details
// that cannot be invented from a product form.
func (s *Service) Resolve(ctx context.Context, name string) (Provider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Provider{}, fmt.Errorf("%w: provider name is required", httpx.ErrValidation)
	}
	existing, found, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return Provider{}, err
	}
	if !found {
		return Provider{}, fmt.Errorf("%w: unknown provider %q", httpx.ErrValidation, name)
	}
	return existing, nil
}
