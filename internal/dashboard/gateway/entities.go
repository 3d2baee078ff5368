package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/botica-real/botica/internal/masterdata/brands"
	"github.com/botica-real/botica/internal/masterdata/categories"
	"github.com/botica-real/botica/internal/masterdata/products"
	"github.com/botica-real/botica/internal/masterdata/providers"
	"github.com/botica-real/botica/internal/sales/customers"
	"github.com/botica-real/botica/internal/sales/orders"
)

// ProductRow is a product flattened for the dashboard table: the nested
// category, brand and provider objects collapse to their display names.
type ProductRow struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"category_name"`
	BrandName    string  `json:"brand_name"`
	ProviderName string  `json:"provider_name"`
}

func flattenProduct(p products.Product) ProductRow {
	return ProductRow{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Stock:        p.Stock,
		Price:        p.Price,
		CategoryName: p.Category.Name,
		BrandName:    p.Brand.Name,
		ProviderName: p.Provider.Name,
	}
}

// FormValues converts a row back into the editable form payload.
func (r ProductRow) FormValues() products.ProductForm {
	return products.ProductForm{
		Name:         r.Name,
		Description:  r.Description,
		Stock:        r.Stock,
		Price:        r.Price,
		ProviderName: r.ProviderName,
		CategoryName: r.CategoryName,
		BrandName:    r.BrandName,
	}
}

// ListProducts fetches all products flattened for display.
func (c *Client) ListProducts(ctx context.Context) ([]ProductRow, error) {
	var raw []products.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &raw); err != nil {
		return nil, err
	}
	rows := make([]ProductRow, len(raw))
	for i, p := range raw {
		rows[i] = flattenProduct(p)
	}
	return rows, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (ProductRow, error) {
	var raw products.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &raw); err != nil {
		return ProductRow{}, err
	}
	return flattenProduct(raw), nil
}

// CreateProduct submits a new product form.
func (c *Client) CreateProduct(ctx context.Context, form products.ProductForm) (ProductRow, error) {
	var raw products.Product
	if err := c.do(ctx, http.MethodPost, "/products", form, &raw); err != nil {
		return ProductRow{}, err
	}
	return flattenProduct(raw), nil
}

// UpdateProduct patches an existing product with a full form.
func (c *Client) UpdateProduct(ctx context.Context, id int64, form products.ProductForm) (ProductRow, error) {
	var raw products.Product
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d", id), form, &raw); err != nil {
		return ProductRow{}, err
	}
	return flattenProduct(raw), nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]categories.Category, error) {
	var out []categories.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory registers a category.
func (c *Client) CreateCategory(ctx context.Context, req categories.CreateCategoryRequest) (categories.Category, error) {
	var out categories.Category
	if err := c.do(ctx, http.MethodPost, "/categories", req, &out); err != nil {
		return categories.Category{}, err
	}
	return out, nil
}

// ListBrands fetches all brands.
func (c *Client) ListBrands(ctx context.Context) ([]brands.Brand, error) {
	var out []brands.Brand
	if err := c.do(ctx, http.MethodGet, "/brands", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBrand registers a brand.
func (c *Client) CreateBrand(ctx context.Context, req brands.CreateBrandRequest) (brands.Brand, error) {
	var out brands.Brand
	if err := c.do(ctx, http.MethodPost, "/brands", req, &out); err != nil {
		return brands.Brand{}, err
	}
	return out, nil
}

// ListProviders fetches all providers.
func (c *Client) ListProviders(ctx context.Context) ([]providers.Provider, error) {
	var out []providers.Provider
	if err := c.do(ctx, http.MethodGet, "/providers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProvider registers a provider.
func (c *Client) CreateProvider(ctx context.Context, req providers.CreateProviderRequest) (providers.Provider, error) {
	var out providers.Provider
	if err := c.do(ctx, http.MethodPost, "/providers", req, &out); err != nil {
		return providers.Provider{}, err
	}
	return out, nil
}

// ListCustomers fetches all customers.
func (c *Client) ListCustomers(ctx context.Context) ([]customers.Customer, error) {
	var out []customers.Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCustomer registers a customer.
func (c *Client) CreateCustomer(ctx context.Context, req customers.CreateCustomerRequest) (customers.Customer, error) {
	var out customers.Customer
	if err := c.do(ctx, http.MethodPost, "/customers", req, &out); err != nil {
		return customers.Customer{}, err
	}
	return out, nil
}

// ListSales fetches sale headers for the sales table.
func (c *Client) ListSales(ctx context.Context) ([]orders.Sale, error) {
	var out []orders.Sale
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSale submits a composed sale.
func (c *Client) CreateSale(ctx context.Context, req orders.CreateSaleRequest) (orders.SaleDetail, error) {
	var out orders.SaleDetail
	if err := c.do(ctx, http.MethodPost, "/sales", req, &out); err != nil {
		return orders.SaleDetail{}, err
	}
	return out, nil
}

// GetSaleDetail fetches the resolved read model for one sale.
func (c *Client) GetSaleDetail(ctx context.Context, id int64) (orders.SaleDetail, error) {
	var out orders.SaleDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sales/%d", id), nil, &out); err != nil {
		return orders.SaleDetail{}, err
	}
	return out, nil
}
