package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/botica-real/botica/internal/platform/db"
	"github.com/botica-real/botica/internal/platform/httpx"
)

// ErrInsufficientStock is returned when a line asks for more units than the
// product has on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

type Repository interface {
	List(ctx context.Context) ([]Sale, error)
	GetDetail(ctx context.Context, id int64) (SaleDetail, error)
	// Create persists the header and lines and decrements product stock in
	// one transaction.
	Create(ctx context.Context, sale Sale, lines []SaleLine) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Sale, error) {
	const query = `SELECT id, customer_dni, total, created_at FROM sales ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []Sale
	for rows.Next() {
		var s Sale
		if err := rows.Scan(&s.ID, &s.CustomerDNI, &s.Total, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *repository) GetDetail(ctx context.Context, id int64) (SaleDetail, error) {
	const headerQuery = `
		SELECT s.id, s.total, s.created_at, c.name, c.last_name, c.email, c.dni
		FROM sales s
		JOIN customers c ON c.dni = s.customer_dni
		WHERE s.id = $1`

	var detail SaleDetail
	err := r.pool.QueryRow(ctx, headerQuery, id).Scan(
		&detail.ID, &detail.Total, &detail.CreatedAt,
		&detail.Customer.Name, &detail.Customer.LastName, &detail.Customer.Email, &detail.Customer.DNI,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SaleDetail{}, httpx.ErrNotFound
		}
		return SaleDetail{}, err
	}

	const linesQuery = `
		SELECT p.name, l.quantity, l.unit_price
		FROM sale_items l
		JOIN products p ON p.id = l.product_id
		WHERE l.sale_id = $1
		ORDER BY l.id`
	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return SaleDetail{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line SaleLineView
		if err := rows.Scan(&line.Name, &line.Quantity, &line.Price); err != nil {
			return SaleDetail{}, err
		}
		detail.Products = append(detail.Products, line)
	}
	return detail, rows.Err()
}

func (r *repository) Create(ctx context.Context, sale Sale, lines []SaleLine) (int64, error) {
	var saleID int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const insertSale = `INSERT INTO sales (customer_dni, total, created_at) VALUES ($1, $2, $3) RETURNING id`
		if err := tx.QueryRow(ctx, insertSale, sale.CustomerDNI, sale.Total, time.Now().UTC()).Scan(&saleID); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		for _, line := range lines {
			const insertLine = `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4)`
			if _, err := tx.Exec(ctx, insertLine, saleID, line.ProductID, line.Quantity, line.UnitPrice); err != nil {
				return fmt.Errorf("insert sale line: %w", err)
			}

			// Guarded decrement; zero rows touched means not enough units.
			const decrement = `UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1`
			tag, err := tx.Exec(ctx, decrement, line.Quantity, line.ProductID)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("product %d: %w", line.ProductID, ErrInsufficientStock)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saleID, nil
}
