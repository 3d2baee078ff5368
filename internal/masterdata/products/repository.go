package products

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/botica-real/botica/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const selectProduct = `
	SELECT p.id, p.name, p.description, p.stock, p.price,
	       c.id, c.name, c.description,
	       b.id, b.name,
	       v.id, v.ruc, v.name, v.address, v.phone, v.email
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN brands b ON b.id = p.brand_id
	JOIN providers v ON v.id = p.provider_id`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Stock, &p.Price,
		&p.Category.ID, &p.Category.Name, &p.Category.Description,
		&p.Brand.ID, &p.Brand.Name,
		&p.Provider.ID, &p.Provider.RUC, &p.Provider.Name, &p.Provider.Address, &p.Provider.Phone, &p.Provider.Email,
	)
	return p, err
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.pool.Query(ctx, selectProduct+` ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	row := r.pool.QueryRow(ctx, selectProduct+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, httpx.ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	const query = `INSERT INTO products (name, description, stock, price, category_id, brand_id, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Stock, product.Price,
		product.Category.ID, product.Brand.ID, product.Provider.ID,
	).Scan(&product.ID)
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

func (r *repository) Update(ctx context.Context, id int64, product Product) error {
	const query = `UPDATE products SET name = $1, description = $2, stock = $3, price = $4,
		category_id = $5, brand_id = $6, provider_id = $7 WHERE id = $8`
	tag, err := r.pool.Exec(ctx, query,
		product.Name, product.Description, product.Stock, product.Price,
		product.Category.ID, product.Brand.ID, product.Provider.ID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}
