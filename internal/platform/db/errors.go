package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation in the Postgres error code table.
const uniqueViolationCode = "23505"

// UniqueViolation reports whether err is a unique-constraint violation on
// the named constraint. Repositories use it to translate duplicate keys
// into domain errors instead of leaking a raw *pgconn.PgError.
func UniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
}
