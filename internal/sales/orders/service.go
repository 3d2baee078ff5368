package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/botica-real/botica/internal/masterdata/products"
	"github.com/botica-real/botica/internal/platform/httpx"
	"github.com/botica-real/botica/internal/sales/customers"
)

// StockAlerter enqueues a background stock scan after a sale lands.
type StockAlerter interface {
	EnqueueLowStockScan(ctx context.Context) error
}

type Service struct {
	repo         Repository
	customerRepo customers.Repository
	productRepo  products.Repository
	productCache *products.ListCache
	detailCache  *DetailCache
	alerter      StockAlerter
	logger       *slog.Logger
}

func NewService(
	repo Repository,
	customerRepo customers.Repository,
	productRepo products.Repository,
	productCache *products.ListCache,
	detailCache *DetailCache,
	alerter StockAlerter,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:         repo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		productCache: productCache,
		detailCache:  detailCache,
		alerter:      alerter,
		logger:       logger,
	}
}

// Create records a sale. The request is all-or-nothing: the customer is
// resolved by DNI, every line is priced at the product's current price, the
// total is computed here, and header, lines and stock decrements commit in a
// single transaction.
func (s *Service) Create(ctx context.Context, req CreateSaleRequest) (SaleDetail, error) {
	if err := validateLines(req.Products); err != nil {
		return SaleDetail{}, err
	}

	customer, err := s.customerRepo.FindByDNI(ctx, req.CustomerDNI)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return SaleDetail{}, fmt.Errorf("%w: no customer with dni %d", httpx.ErrValidation, req.CustomerDNI)
		}
		return SaleDetail{}, fmt.Errorf("resolve customer: %w", err)
	}

	var total float64
	lines := make([]SaleLine, 0, len(req.Products))
	for _, lineReq := range req.Products {
		product, err := s.productRepo.Get(ctx, lineReq.ProductID)
		if err != nil {
			if errors.Is(err, httpx.ErrNotFound) {
				return SaleDetail{}, fmt.Errorf("%w: no product with id %d", httpx.ErrValidation, lineReq.ProductID)
			}
			return SaleDetail{}, fmt.Errorf("resolve product %d: %w", lineReq.ProductID, err)
		}
		total += float64(lineReq.Quantity) * product.Price
		lines = append(lines, SaleLine{
			ProductID: product.ID,
			Quantity:  lineReq.Quantity,
			UnitPrice: product.Price,
		})
	}

	saleID, err := s.repo.Create(ctx, Sale{CustomerDNI: customer.DNI, Total: total}, lines)
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return SaleDetail{}, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
		}
		return SaleDetail{}, err
	}

	// Stock changed, so the cached product list is stale now.
	if err := s.productCache.Invalidate(ctx); err != nil && s.logger != nil {
		s.logger.Warn("invalidate product list cache", slog.Any("error", err))
	}

	if s.alerter != nil {
		if err := s.alerter.EnqueueLowStockScan(ctx); err != nil && s.logger != nil {
			s.logger.Warn("enqueue low stock scan", slog.Any("error", err))
		}
	}

	return s.Get(ctx, saleID)
}

// Get returns the read model for one sale, serving from cache when possible.
func (s *Service) Get(ctx context.Context, id int64) (SaleDetail, error) {
	if id <= 0 {
		return SaleDetail{}, fmt.Errorf("%w: invalid sale ID", httpx.ErrValidation)
	}
	if cached, ok := s.detailCache.Get(ctx, id); ok {
		return cached, nil
	}
	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return SaleDetail{}, err
	}
	if err := s.detailCache.Set(ctx, detail); err != nil && s.logger != nil {
		s.logger.Warn("cache sale detail", slog.Any("error", err))
	}
	return detail, nil
}

func (s *Service) List(ctx context.Context) ([]Sale, error) {
	return s.repo.List(ctx)
}

// validateLines re-checks the payload invariants structurally. The dashboard
// disables already-picked products in its selectors, but a presentation-layer
// constraint is not a substitute for rejecting a duplicated product here.
func validateLines(lines []SaleLineRequest) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: a sale needs at least one line item", httpx.ErrValidation)
	}
	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if line.ProductID < 1 {
			return fmt.Errorf("%w: a product must be chosen for every line", httpx.ErrValidation)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be at least 1", httpx.ErrValidation)
		}
		if _, dup := seen[line.ProductID]; dup {
			return fmt.Errorf("%w: product %d appears more than once", httpx.ErrValidation, line.ProductID)
		}
		seen[line.ProductID] = struct{}{}
	}
	return nil
}
