package providers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/botica-real/botica/internal/platform/db"
	"github.com/botica-real/botica/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Provider, error)
	FindByName(ctx context.Context, name string) (Provider, bool, error)
	Create(ctx context.Context, provider Provider) (Provider, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Provider, error) {
	const query = `SELECT id, ruc, name, address, phone, email FROM providers ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []Provider
	for rows.Next() {
		var p Provider
		if err := rows.Scan(&p.ID, &p.RUC, &p.Name, &p.Address, &p.Phone, &p.Email); err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (r *repository) FindByName(ctx context.Context, name string) (Provider, bool, error) {
	const query = `SELECT id, ruc, name, address, phone, email FROM providers WHERE name = $1`
	var p Provider
	err := r.pool.QueryRow(ctx, query, name).Scan(&p.ID, &p.RUC, &p.Name, &p.Address, &p.Phone, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Provider{}, false, nil
		}
		return Provider{}, false, err
	}
	return p, true, nil
}

func (r *repository) Create(ctx context.Context, provider Provider) (Provider, error) {
	const query = `INSERT INTO providers (ruc, name, address, phone, email) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.pool.QueryRow(ctx, query, provider.RUC, provider.Name, provider.Address, provider.Phone, provider.Email).Scan(&provider.ID)
	if err != nil {
		if db.UniqueViolation(err, "uq_providers_ruc") {
			return Provider{}, httpx.ErrDuplicate
		}
		return Provider{}, err
	}
	return provider, nil
}
