package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

const uniqueViolation = "23505"

// storeErr classifies an unexpected pgx failure. A PgError means the server
// answered and rejected us (internal); anything else is connectivity.
func storeErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.NewInternal("Server error", err)
	}
	return apperror.NewUnavailable("Database connection error. Please try again later.", err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
