package postgres

import "github.com/jackc/pgx/v5/pgconn"

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}
