package customers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/botica-real/botica/internal/platform/db"
	"github.com/botica-real/botica/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	FindByDNI(ctx context.Context, dni int64) (Customer, error)
	Create(ctx context.Context, customer Customer) (Customer, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Customer, error) {
	const query = `SELECT id, dni, name, last_name, email FROM customers ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.DNI, &c.Name, &c.LastName, &c.Email); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *repository) FindByDNI(ctx context.Context, dni int64) (Customer, error) {
	const query = `SELECT id, dni, name, last_name, email FROM customers WHERE dni = $1`
	var c Customer
	err := r.pool.QueryRow(ctx, query, dni).Scan(&c.ID, &c.DNI, &c.Name, &c.LastName, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, httpx.ErrNotFound
		}
		return Customer{}, err
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, customer Customer) (Customer, error) {
	const query = `INSERT INTO customers (dni, name, last_name, email) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.pool.QueryRow(ctx, query, customer.DNI, customer.Name, customer.LastName, customer.Email).Scan(&customer.ID)
	if err != nil {
		if db.UniqueViolation(err, "uq_customers_dni") {
			return Customer{}, httpx.ErrDuplicate
		}
		return Customer{}, err
	}
	return customer, nil
}
