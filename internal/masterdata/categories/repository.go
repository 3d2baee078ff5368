package categories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	FindByName(ctx context.Context, name string) (Category, bool, error)
	Create(ctx context.Context, category Category) (Category, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	const query = `SELECT id, name, description FROM categories ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repository) FindByName(ctx context.Context, name string) (Category, bool, error) {
	const query = `SELECT id, name, description FROM categories WHERE name = $1`
	var c Category
	err := r.pool.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, false, nil
		}
		return Category{}, false, err
	}
	return c, true, nil
}

func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	const query = `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`
	if err := r.pool.QueryRow(ctx, query, category.Name, category.Description).Scan(&category.ID); err != nil {
		return Category{}, err
	}
	return category, nil
}
