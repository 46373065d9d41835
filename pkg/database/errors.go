package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation           = "23505"
	pgInvalidTextRepresentation = "22P02"
)

// IsUniqueViolation reports whether err wraps a unique constraint failure.
func IsUniqueViolation(err error) bool {
	return hasCode(err, pgUniqueViolation)
}

// IsInvalidInput reports whether err wraps a value PostgreSQL could not
// parse for its column type, such as a malformed UUID.
func IsInvalidInput(err error) bool {
	return hasCode(err, pgInvalidTextRepresentation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
