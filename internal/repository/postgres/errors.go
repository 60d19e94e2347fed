package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFieldsNotAllowedToUpdate = errors.New("provided fields are not allowed to update")
	ErrUniqueViolation          = errors.New("unique constraint violation")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
