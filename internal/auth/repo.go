package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/botica-real/botica/internal/platform/httpx"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByUsername fetches a user by username.
func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	const query = `SELECT id, username, password_hash, is_active, created_at, updated_at FROM users WHERE username = $1`
	var user User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new active user account.
func (r *PGRepository) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	const query = `INSERT INTO users (username, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, TRUE, $3, $3) RETURNING id`
	now := time.Now().UTC()
	user := User{Username: username, PasswordHash: passwordHash, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := r.pool.QueryRow(ctx, query, username, passwordHash, now).Scan(&user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

var _ Repository = (*PGRepository)(nil)
