package brands

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

func (s *Service) List(ctx context.Context) ([]Brand, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateBrandRequest) (Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Brand{}, fmt.Errorf("%w: brand name is required", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, Brand{Name: name})
}

// Resolve returns the brand with the given name, creating it when absent.
func (s *Service) Resolve(ctx context.Context, name string) (Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Brand{}, fmt.Errorf("%w: brand name is required", httpx.ErrValidation)
	}
	existing, found, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return Brand{}, err
	}
	if found {
		return existing, nil
	}
	return s.repo.Create(ctx, Brand{Name: name})
}
