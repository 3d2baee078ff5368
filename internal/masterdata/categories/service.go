package categories

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

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Category{}, fmt.Errorf("%w: category name is required", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, Category{Name: name, Description: strings.TrimSpace(req.Description)})
}

// Resolve returns the category with the given name, creating it when absent.
// The dashboard submits human-readable names on product forms, so unseen
// categories come into existence on first use.
func (s *Service) Resolve(ctx context.Context, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, fmt.Errorf("%w: category name is required", httpx.ErrValidation)
	}
	existing, found, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return Category{}, err
	}
	if found {
		return existing, nil
	}
	return s.repo.Create(ctx, Category{Name: name})
}
