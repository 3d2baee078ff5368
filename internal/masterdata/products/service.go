package products

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/botica-real/botica/internal/masterdata/brands"
	"github.com/botica-real/botica/internal/masterdata/categories"
	"github.com/botica-real/botica/internal/masterdata/providers"
	"github.com/botica-real/botica/internal/platform/httpx"
)

type Service struct {
	repo            Repository
	categoryService *categories.Service
	brandService    *brands.Service
	providerService *providers.Service
	cache           *ListCache
	logger          *slog.Logger
}

func NewService(
	repo Repository,
	categoryService *categories.Service,
	brandService *brands.Service,
	providerService *providers.Service,
	cache *ListCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:            repo,
		categoryService: categoryService,
		brandService:    brandService,
		providerService: providerService,
		cache:           cache,
		logger:          logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, products); err != nil && s.logger != nil {
		s.logger.Warn("cache product list", slog.Any("error", err))
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: invalid product ID", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, form ProductForm) (Product, error) {
	product, err := s.fromForm(ctx, form)
	if err != nil {
		return Product{}, err
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return Product{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, form ProductForm) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: invalid product ID", httpx.ErrValidation)
	}
	product, err := s.fromForm(ctx, form)
	if err != nil {
		return Product{}, err
	}
	if err := s.repo.Update(ctx, id, product); err != nil {
		return Product{}, err
	}
	s.invalidate(ctx)
	product.ID = id
	return product, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid product ID", httpx.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) validate(form ProductForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return fmt.Errorf("%w: product name is required", httpx.ErrValidation)
	}
	if form.Stock <= 0 {
		return fmt.Errorf("%w: stock must be positive", httpx.ErrValidation)
	}
	if form.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", httpx.ErrValidation)
	}
	return nil
}

// fromForm validates the form and resolves the submitted category, brand and
// provider names into masterdata rows.
func (s *Service) fromForm(ctx context.Context, form ProductForm) (Product, error) {
	if err := s.validate(form); err != nil {
		return Product{}, err
	}

	category, err := s.categoryService.Resolve(ctx, form.CategoryName)
	if err != nil {
		return Product{}, fmt.Errorf("resolve category: %w", err)
	}
	brand, err := s.brandService.Resolve(ctx, form.BrandName)
	if err != nil {
		return Product{}, fmt.Errorf("resolve brand: %w", err)
	}
	provider, err := s.providerService.Resolve(ctx, form.ProviderName)
	if err != nil {
		if errors.Is(err, httpx.ErrValidation) {
			return Product{}, err
		}
		return Product{}, fmt.Errorf("resolve provider: %w", err)
	}

	return Product{
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		Stock:       form.Stock,
		Price:       form.Price,
		Category:    category,
		Brand:       brand,
		Provider:    provider,
	}, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil && s.logger != nil {
		s.logger.Warn("invalidate product list cache", slog.Any("error", err))
	}
}
