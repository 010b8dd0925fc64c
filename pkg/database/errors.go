package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// codeForeignKeyViolation is the SQLSTATE the repositories translate into
// domain not-found errors.
const codeForeignKeyViolation = "23503"

// ForeignKeyViolation reports whether err is a foreign_key_violation and, if
// so, the name of the violated constraint.
func ForeignKeyViolation(err error) (constraint string, ok bool) {
	pgErr, ok := pgCode(err, codeForeignKeyViolation)
	if !ok {
		return "", false
	}
	return pgErr.ConstraintName, true
}

func pgCode(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}
