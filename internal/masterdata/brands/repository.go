package brands

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]Brand, error)
	FindByName(ctx context.Context, name string) (Brand, bool, error)
	Create(ctx context.Context, brand Brand) (Brand, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Brand, error) {
	const query = `SELECT id, name FROM brands ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []Brand
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *repository) FindByName(ctx context.Context, name string) (Brand, bool, error) {
	const query = `SELECT id, name FROM brands WHERE name = $1`
	var b Brand
	err := r.pool.QueryRow(ctx, query, name).Scan(&b.ID, &b.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Brand{}, false, nil
		}
		return Brand{}, false, err
	}
	return b, true, nil
}

func (r *repository) Create(ctx context.Context, brand Brand) (Brand, error) {
	const query = `INSERT INTO brands (name) VALUES ($1) RETURNING id`
	if err := r.pool.QueryRow(ctx, query, brand.Name).Scan(&brand.ID); err != nil {
		return Brand{}, err
	}
	return brand, nil
}
