package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Postgres SQLSTATE codes that mean the caller sent bad data.
const (
	pgStringTooLong      = "22001"
	pgInvalidDatetime    = "22007"
	pgDatetimeOutOfRange = "22008"
	pgNotNullViolation   = "23502"
)

func storageErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgStringTooLong:
			return httperr.ErrValidation("value too long")
		case pgInvalidDatetime, pgDatetimeOutOfRange:
			return httperr.ErrValidation("invalid date", "date")
		case pgNotNullViolation:
			return httperr.ErrValidation("missing required fields", pgErr.ColumnName)
		}
	}
	return httperr.ErrStorage(op, err)
}
