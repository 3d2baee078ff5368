package products

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botica-real/botica/internal/masterdata/brands"
	"github.com/botica-real/botica/internal/masterdata/categories"
	"github.com/botica-real/botica/internal/masterdata/providers"
	"github.com/botica-real/botica/internal/platform/httpx"
)

type stubProductRepo struct {
	products  []Product
	nextID    int64
	listCalls int
}

func (s *stubProductRepo) List(ctx context.Context) ([]Product, error) {
	s.listCalls++
	return append([]Product(nil), s.products...), nil
}

func (s *stubProductRepo) Get(ctx context.Context, id int64) (Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, httpx.ErrNotFound
}

func (s *stubProductRepo) Create(ctx context.Context, product Product) (Product, error) {
	s.nextID++
	product.ID = s.nextID
	s.products = append(s.products, product)
	return product, nil
}

func (s *stubProductRepo) Update(ctx context.Context, id int64, product Product) error {
	for i, p := range s.products {
		if p.ID == id {
			product.ID = id
			s.products[i] = product
			return nil
		}
	}
	return httpx.ErrNotFound
}

func (s *stubProductRepo) Delete(ctx context.Context, id int64) error {
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return httpx.ErrNotFound
}

type stubCategoryRepo struct {
	rows   []categories.Category
	nextID int64
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]categories.Category, error) {
	return s.rows, nil
}

func (s *stubCategoryRepo) FindByName(ctx context.Context, name string) (categories.Category, bool, error) {
	for _, c := range s.rows {
		if c.Name == name {
			return c, true, nil
		}
	}
	return categories.Category{}, false, nil
}

func (s *stubCategoryRepo) Create(ctx context.Context, c categories.Category) (categories.Category, error) {
	s.nextID++
	c.ID = s.nextID
	s.rows = append(s.rows, c)
	return c, nil
}

type stubBrandRepo struct {
	rows   []brands.Brand
	nextID int64
}

func (s *stubBrandRepo) List(ctx context.Context) ([]brands.Brand, error) {
	return s.rows, nil
}

func (s *stubBrandRepo) FindByName(ctx context.Context, name string) (brands.Brand, bool, error) {
	for _, b := range s.rows {
		if b.Name == name {
			return b, true, nil
		}
	}
	return brands.Brand{}, false, nil
}

func (s *stubBrandRepo) Create(ctx context.Context, b brands.Brand) (brands.Brand, error) {
	s.nextID++
	b.ID = s.nextID
	s.rows = append(s.rows, b)
	return b, nil
}

type stubProviderRepo struct {
	rows []providers.Provider
}

func (s *stubProviderRepo) List(ctx context.Context) ([]providers.Provider, error) {
	return s.rows, nil
}

func (s *stubProviderRepo) FindByName(ctx context.Context, name string) (providers.Provider, bool, error) {
	for _, p := range s.rows {
		if p.Name == name {
			return p, true, nil
		}
	}
	return providers.Provider{}, false, nil
}

func (s *stubProviderRepo) Create(ctx context.Context, p providers.Provider) (providers.Provider, error) {
	p.ID = int64(len(s.rows) + 1)
	s.rows = append(s.rows, p)
	return p, nil
}

func newServiceForTest(t *testing.T, repo Repository, cache *ListCache) *Service {
	t.Helper()
	providerRepo := &stubProviderRepo{rows: []providers.Provider{
		{ID: 1, RUC: 20123456789, Name: "PharmaCo", Address: "Av. Central 100", Phone: "999111222", Email: "ventas@pharmaco.pe"},
	}}
	return NewService(
		repo,
		categories.NewService(&stubCategoryRepo{}),
		brands.NewService(&stubBrandRepo{}),
		providers.NewService(providerRepo),
		cache,
		nil,
	)
}

func validForm() ProductForm {
	return ProductForm{
		Name:         "Aspirin",
		Description:  "Pain relief",
		Stock:        50,
		Price:        12.5,
		ProviderName: "PharmaCo",
		CategoryName: "OTC",
		BrandName:    "Bayer",
	}
}

func TestCreateResolvesNamesOnTheFly(t *testing.T) {
	repo := &stubProductRepo{}
	service := newServiceForTest(t, repo, nil)

	created, err := service.Create(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, "Aspirin", created.Name)
	assert.Equal(t, "OTC", created.Category.Name)
	assert.Equal(t, "Bayer", created.Brand.Name)
	assert.Equal(t, "PharmaCo", created.Provider.Name)
	assert.NotZero(t, created.Category.ID)
	assert.NotZero(t, created.Brand.ID)

	// Same names resolve to the same rows on a second create.
	again, err := service.Create(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, created.Category.ID, again.Category.ID)
	assert.Equal(t, created.Brand.ID, again.Brand.ID)
}

func TestCreateRejectsUnknownProvider(t *testing.T) {
	service := newServiceForTest(t, &stubProductRepo{}, nil)

	form := validForm()
	form.ProviderName = "Nobody Pharma"
	_, err := service.Create(context.Background(), form)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateRejectsNonPositiveStockAndPrice(t *testing.T) {
	service := newServiceForTest(t, &stubProductRepo{}, nil)

	form := validForm()
	form.Stock = 0
	_, err := service.Create(context.Background(), form)
	require.ErrorIs(t, err, httpx.ErrValidation)

	form = validForm()
	form.Price = -1
	_, err = service.Create(context.Background(), form)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestListCacheInvalidatedByMutation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewListCache(client, time.Minute)

	repo := &stubProductRepo{}
	service := newServiceForTest(t, repo, cache)
	ctx := context.Background()

	_, err := service.List(ctx)
	require.NoError(t, err)
	_, err = service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second list should be served from cache")

	_, err = service.Create(ctx, validForm())
	require.NoError(t, err)

	products, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "list after create must bypass the dropped cache")
	require.Len(t, products, 1)
	assert.Equal(t, "Aspirin", products[0].Name)
}
